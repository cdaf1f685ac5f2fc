package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fieldbook/internal/report"
	"fieldbook/internal/service"
)

type ReportHTTP struct {
	svc *service.TicketService
	log zerolog.Logger
}

func NewReportHTTP(s *service.TicketService, log zerolog.Logger) *ReportHTTP {
	return &ReportHTTP{svc: s, log: log}
}

// GET /api/tickets/{id}/report.pdf
func (h *ReportHTTP) TicketPDF() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rep, err := h.svc.BuildReport(r.Context(), actorFrom(r), id)
		if err != nil {
			fail(w, h.log, err)
			return
		}

		pdf, err := report.Render(rep)
		if err != nil {
			fail(w, h.log, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="report-`+id+`.pdf"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	}
}
