package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fieldbook/internal/service"
	"fieldbook/internal/utils"
)

type ChatHTTP struct {
	svc *service.ChatService
	log zerolog.Logger
}

func NewChatHTTP(s *service.ChatService, log zerolog.Logger) *ChatHTTP {
	return &ChatHTTP{svc: s, log: log}
}

// GET /api/chat/threads
func (h *ChatHTTP) Threads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threads, err := h.svc.Threads(r.Context(), actorFrom(r))
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"threads": threads})
	}
}

// GET /api/chat/{otherUserID}
func (h *ChatHTTP) Messages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := h.svc.Messages(r.Context(), actorFrom(r), chi.URLParam(r, "otherUserID"))
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"messages": msgs})
	}
}

// POST /api/chat/{otherUserID} — body {text}
func (h *ChatHTTP) Send() http.HandlerFunc {
	type inDTO struct {
		Text string `json:"text"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		m, err := h.svc.Send(r.Context(), actorFrom(r), chi.URLParam(r, "otherUserID"), in.Text)
		if err != nil {
			fail(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"message": m})
	}
}
