package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"fieldbook/internal/repository"
	"fieldbook/internal/utils"
)

type UserHTTP struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func NewUserHTTP(users repository.UserRepository, log zerolog.Logger) *UserHTTP {
	return &UserHTTP{users: users, log: log}
}

// GET /api/users
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.users.List(r.Context())
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"users": users})
	}
}

// GET /api/users/me
func (h *UserHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r)
		u, err := h.users.GetByID(r.Context(), actor.ID)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		if u == nil {
			utils.Error(w, http.StatusNotFound, "not found")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"user": u})
	}
}
