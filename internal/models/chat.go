package models

import "time"

type ChatMessage struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatThread is one counterparty with the time of the most recent message in
// either direction.
type ChatThread struct {
	OtherUserID string    `json:"other_user_id"`
	OtherEmail  string    `json:"other_email"`
	Name        string    `json:"name,omitempty"`
	LastAt      time.Time `json:"last_at"`
}
