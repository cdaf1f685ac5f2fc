package models

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID string    `json:"owner_user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Issue is a reusable template under a category. StepsText is opaque
// newline-separated text at this level; it is only split into discrete steps
// when a ticket bootstraps its checklist.
type Issue struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"` // joined at read time
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StepsText    string    `json:"steps_text"`
	Solution     string    `json:"solution"`
	CreatedAt    time.Time `json:"created_at"`
}
