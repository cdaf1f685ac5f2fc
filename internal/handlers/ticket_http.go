package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fieldbook/internal/service"
	"fieldbook/internal/utils"
)

type TicketHTTP struct {
	svc *service.TicketService
	log zerolog.Logger
}

func NewTicketHTTP(s *service.TicketService, log zerolog.Logger) *TicketHTTP {
	return &TicketHTTP{svc: s, log: log}
}

// GET /api/tickets — scoped by actor: admins see all, everyone else only
// tickets they created or are assigned to.
func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.svc.List(r.Context(), actorFrom(r))
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// POST /api/tickets
func (h *TicketHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Site           string `json:"site"`
		VisitDate      string `json:"visit_date"`
		CategoryID     string `json:"category_id"`
		IssueID        string `json:"issue_id"`
		Description    string `json:"description"`
		IssueText      string `json:"issue_text"` // legacy field name for description
		EngineerUserID string `json:"engineer_user_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		desc := in.IssueText
		if desc == "" {
			desc = in.Description
		}
		t, err := h.svc.Create(r.Context(), actorFrom(r), service.CreateTicketInput{
			Site:           in.Site,
			VisitDate:      in.VisitDate,
			CategoryID:     in.CategoryID,
			IssueID:        in.IssueID,
			Description:    desc,
			EngineerUserID: in.EngineerUserID,
		})
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// PUT /api/tickets/{id}/status — body {status: "open"|"closed"}
func (h *TicketHTTP) SetStatus() http.HandlerFunc {
	type inDTO struct {
		Status string `json:"status"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := h.svc.SetStatus(r.Context(), chi.URLParam(r, "id"), in.Status)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// POST /api/tickets/{id}/bootstrap-steps — body {steps: []string}. Copies the
// template checklist onto the ticket once; a ticket that already has steps
// keeps them no matter what is posted.
func (h *TicketHTTP) BootstrapSteps() http.HandlerFunc {
	type inDTO struct {
		Steps []string `json:"steps"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		steps, err := h.svc.BootstrapSteps(r.Context(), chi.URLParam(r, "id"), in.Steps)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, steps)
	}
}

// GET /api/tickets/{id}/steps
func (h *TicketHTTP) ListSteps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		steps, err := h.svc.ListSteps(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, steps)
	}
}

// PUT /api/tickets/{id}/steps/{stepID} — body {result: true|false|null}
func (h *TicketHTTP) UpdateStepResult() http.HandlerFunc {
	type inDTO struct {
		Result *bool `json:"result"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		step, err := h.svc.UpdateStepResult(r.Context(),
			chi.URLParam(r, "id"), chi.URLParam(r, "stepID"), in.Result)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, step)
	}
}

// GET /api/tickets/{id}/notes
func (h *TicketHTTP) ListNotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := h.svc.ListNotes(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, notes)
	}
}

// POST /api/tickets/{id}/notes — body {note_text}
func (h *TicketHTTP) AddNote() http.HandlerFunc {
	type inDTO struct {
		NoteText string `json:"note_text"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		n, err := h.svc.AddNote(r.Context(), chi.URLParam(r, "id"), in.NoteText)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, n)
	}
}
