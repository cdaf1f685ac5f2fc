package models

import "time"

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

const (
	StepPass = "pass"
	StepFail = "fail"
)

// Ticket is one logged visit. The optional references are stored as empty
// strings in Go and NULLs in the database; nothing beyond the creator is
// required at this layer.
type Ticket struct {
	ID              string     `json:"id"`
	Status          string     `json:"status"` // open | closed
	Site            string     `json:"site"`
	VisitDate       string     `json:"visit_date"`
	CategoryID      string     `json:"category_id"`
	IssueID         string     `json:"issue_id"`
	Description     string     `json:"description"` // free-text issue description
	EngineerUserID  string     `json:"engineer_user_id"`
	CreatedByUserID string     `json:"created_by_user_id"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at"`

	// Joined at read time; renames propagate to old tickets on purpose.
	CategoryName     string `json:"category_name,omitempty"`
	IssueTitle       string `json:"issue_title,omitempty"`
	IssueDescription string `json:"issue_description,omitempty"`
	EngineerName     string `json:"engineer_name,omitempty"`
	EngineerEmail    string `json:"engineer_email,omitempty"`
	CreatorName      string `json:"creator_name,omitempty"`
	CreatorEmail     string `json:"creator_email,omitempty"`
}

// TicketStep is one checklist row, snapshotted from the template at bootstrap
// time and mutated independently afterwards. StepIndex is nil on rows that
// predate ordinal support; those sort after indexed rows, then by creation
// time.
type TicketStep struct {
	ID        string     `json:"id"`
	TicketID  string     `json:"ticket_id"`
	StepIndex *int       `json:"step_index"`
	StepText  string     `json:"step_text"`
	Result    *string    `json:"result"` // pass | fail | nil
	CheckedAt *time.Time `json:"checked_at"`
	CreatedAt time.Time  `json:"created_at"`
}

type TicketNote struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	NoteText  string    `json:"note_text"`
	CreatedAt time.Time `json:"created_at"`
}

// Report is the assembled read model behind the PDF endpoint.
type Report struct {
	Ticket   *Ticket
	Steps    []TicketStep
	Notes    []TicketNote
	Solution string
}
