// Package report renders a ticket's full state into a fixed-layout PDF.
package report

import (
	"bytes"
	"fmt"
	"time"

	"fieldbook/internal/models"

	"github.com/jung-kurt/gofpdf"
)

const timeLayout = "2006-01-02 15:04 MST"

// Render produces the report document: title block, metadata, description,
// template description, checklist, notes, solution, footer. It has no side
// effects and may be retried freely.
func Render(rep *models.Report) ([]byte, error) {
	t := rep.Ticket

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Visit Report "+t.ID, false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Generated %s - page %d", time.Now().UTC().Format(timeLayout), pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Visit Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, t.ID, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Metadata
	meta := [][2]string{
		{"Status", t.Status},
		{"Site", t.Site},
		{"Visit date", t.VisitDate},
		{"Category", t.CategoryName},
		{"Issue", t.IssueTitle},
		{"Engineer", nameWithEmail(t.EngineerName, t.EngineerEmail)},
		{"Created by", nameWithEmail(t.CreatorName, t.CreatorEmail)},
		{"Created at", t.CreatedAt.Format(timeLayout)},
		{"Completed at", formatCompleted(t.CompletedAt)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range meta {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, orDash(row[1]), "", "L", false)
	}
	pdf.Ln(4)

	section(pdf, "Description")
	paragraph(pdf, t.Description)

	if t.IssueDescription != "" {
		section(pdf, "Issue template")
		paragraph(pdf, t.IssueDescription)
	}

	section(pdf, "Checklist")
	if len(rep.Steps) == 0 {
		paragraph(pdf, "No checklist recorded.")
	} else {
		for _, s := range rep.Steps {
			pdf.SetFont("Courier", "B", 10)
			pdf.CellFormat(20, 6, glyph(s.Result), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 6, s.StepText, "", "L", false)
		}
	}
	pdf.Ln(2)

	section(pdf, "Notes")
	if len(rep.Notes) == 0 {
		paragraph(pdf, "No notes.")
	} else {
		for _, n := range rep.Notes {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(0, 5, n.CreatedAt.Format(timeLayout), "", 1, "L", false, 0, "")
			paragraph(pdf, n.NoteText)
		}
	}

	if rep.Solution != "" {
		section(pdf, "Solution")
		paragraph(pdf, rep.Solution)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func paragraph(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, orDash(text), "", "L", false)
	pdf.Ln(2)
}

// glyph renders a step result; core PDF fonts have no check marks, so the
// markers are textual.
func glyph(result *string) string {
	if result == nil {
		return "[    ]"
	}
	switch *result {
	case models.StepPass:
		return "[PASS]"
	case models.StepFail:
		return "[FAIL]"
	default:
		return "[    ]"
	}
}

func nameWithEmail(name, email string) string {
	switch {
	case name != "" && email != "":
		return name + " <" + email + ">"
	case name != "":
		return name
	default:
		return email
	}
}

func formatCompleted(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
