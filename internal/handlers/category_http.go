package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fieldbook/internal/service"
	"fieldbook/internal/utils"
)

type CategoryHTTP struct {
	svc *service.CategoryService
	log zerolog.Logger
}

func NewCategoryHTTP(s *service.CategoryService, log zerolog.Logger) *CategoryHTTP {
	return &CategoryHTTP{svc: s, log: log}
}

// GET /api/categories
func (h *CategoryHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := h.svc.List(r.Context())
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, cats)
	}
}

// POST /api/categories
func (h *CategoryHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		c, err := h.svc.Create(r.Context(), actorFrom(r), in.Name)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, c)
	}
}

// PUT /api/categories/{id}
func (h *CategoryHTTP) Update() http.HandlerFunc {
	type inDTO struct {
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		c, err := h.svc.Rename(r.Context(), chi.URLParam(r, "id"), in.Name)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, c)
	}
}

// DELETE /api/categories/{id}
func (h *CategoryHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
