package service

import (
	"context"
	"strings"
	"time"

	"fieldbook/internal/apperr"
	"fieldbook/internal/models"
	"fieldbook/internal/repository"
	"fieldbook/internal/utils"
)

type ChatService struct {
	chats repository.ChatRepository
}

func NewChatService(chats repository.ChatRepository) *ChatService {
	return &ChatService{chats: chats}
}

func (s *ChatService) Threads(ctx context.Context, actor models.Actor) ([]models.ChatThread, error) {
	return s.chats.Threads(ctx, actor.ID)
}

func (s *ChatService) Messages(ctx context.Context, actor models.Actor, otherUserID string) ([]models.ChatMessage, error) {
	if otherUserID == "" {
		return nil, apperr.Invalid("missing otherUserId")
	}
	return s.chats.Messages(ctx, actor.ID, otherUserID)
}

func (s *ChatService) Send(ctx context.Context, actor models.Actor, otherUserID, text string) (*models.ChatMessage, error) {
	if otherUserID == "" {
		return nil, apperr.Invalid("missing otherUserId")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Invalid("empty message")
	}
	m := &models.ChatMessage{
		ID:         utils.NewID("m_"),
		FromUserID: actor.ID,
		ToUserID:   otherUserID,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.chats.Send(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
