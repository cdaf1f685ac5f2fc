package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"fieldbook/internal/service"
	"fieldbook/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
	log zerolog.Logger
}

func NewAuthHTTP(s *service.AuthService, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: s, log: log}
}

func (h *AuthHTTP) Register() http.HandlerFunc {
	type inDTO struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=4"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := validate.Struct(in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid payload")
			return
		}

		token, u, err := h.svc.Register(r.Context(), in.Email, in.Password, in.FirstName, in.LastName)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"token": token, "user": u})
	}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	type inDTO struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := validate.Struct(in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid payload")
			return
		}

		token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"token": token, "user": u})
	}
}
