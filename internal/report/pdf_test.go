package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldbook/internal/models"
)

func TestRender(t *testing.T) {
	now := time.Now().UTC()
	idx0, idx1 := 0, 1
	pass, fail := models.StepPass, models.StepFail

	rep := &models.Report{
		Ticket: &models.Ticket{
			ID:           "t_1",
			Status:       models.StatusClosed,
			Site:         "Plant 7",
			VisitDate:    "2026-08-01",
			CategoryName: "Lighting",
			IssueTitle:   "Lights out",
			EngineerName: "Jo Field",
			CreatorName:  "Sam Desk",
			CreatedAt:    now,
			CompletedAt:  &now,
			Description:  "lobby lighting down",
		},
		Steps: []models.TicketStep{
			{ID: "ts_1", TicketID: "t_1", StepIndex: &idx0, StepText: "Check breaker", Result: &fail, CheckedAt: &now, CreatedAt: now},
			{ID: "ts_2", TicketID: "t_1", StepIndex: &idx1, StepText: "Check bulb", Result: &pass, CheckedAt: &now, CreatedAt: now},
		},
		Notes: []models.TicketNote{
			{ID: "tn_1", TicketID: "t_1", NoteText: "breaker fine", CreatedAt: now},
		},
		Solution: "Replace bulb",
	}

	pdf, err := Render(rep)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRender_EmptySections(t *testing.T) {
	rep := &models.Report{
		Ticket: &models.Ticket{ID: "t_min", Status: models.StatusOpen, CreatedAt: time.Now().UTC()},
	}
	pdf, err := Render(rep)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGlyph(t *testing.T) {
	pass, fail, junk := models.StepPass, models.StepFail, "maybe"
	assert.Equal(t, "[PASS]", glyph(&pass))
	assert.Equal(t, "[FAIL]", glyph(&fail))
	assert.Equal(t, "[    ]", glyph(nil))
	assert.Equal(t, "[    ]", glyph(&junk))
}
