package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fieldbook/internal/service"
	"fieldbook/internal/utils"
)

type IssueHTTP struct {
	svc *service.IssueService
	log zerolog.Logger
}

func NewIssueHTTP(s *service.IssueService, log zerolog.Logger) *IssueHTTP {
	return &IssueHTTP{svc: s, log: log}
}

// GET /api/issues?category_id=...
func (h *IssueHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		issues, err := h.svc.List(r.Context(), r.URL.Query().Get("category_id"))
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, issues)
	}
}

// POST /api/issues
func (h *IssueHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		CategoryID  string `json:"category_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		StepsText   string `json:"steps_text"`
		Solution    string `json:"solution"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		i, err := h.svc.Create(r.Context(), in.CategoryID, in.Title, in.Description, in.StepsText, in.Solution)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, i)
	}
}

// PUT /api/issues/{id} — partial update; absent fields keep their value,
// explicit empty strings clear the text fields.
func (h *IssueHTTP) Update() http.HandlerFunc {
	type inDTO struct {
		CategoryID  *string `json:"category_id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		StepsText   *string `json:"steps_text"`
		Solution    *string `json:"solution"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		i, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), service.IssuePatch{
			CategoryID:  in.CategoryID,
			Title:       in.Title,
			Description: in.Description,
			StepsText:   in.StepsText,
			Solution:    in.Solution,
		})
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, i)
	}
}

// DELETE /api/issues/{id}
func (h *IssueHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
