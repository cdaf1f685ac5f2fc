package repository

import (
	"context"
	"time"

	"fieldbook/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id, role string) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	UpdateName(ctx context.Context, id, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type IssueRepository interface {
	List(ctx context.Context, categoryID string) ([]models.Issue, error)
	Get(ctx context.Context, id string) (*models.Issue, error)
	Create(ctx context.Context, i *models.Issue) error
	Update(ctx context.Context, i *models.Issue) error
	Delete(ctx context.Context, id string) error
}

type TicketRepository interface {
	// List returns tickets visible to the actor, newest first, with catalog
	// and user names joined in.
	List(ctx context.Context, actor models.Actor) ([]models.Ticket, error)
	Get(ctx context.Context, id string) (*models.Ticket, error)
	Create(ctx context.Context, t *models.Ticket) error
	// SetStatus overwrites status and completed_at; returns false when the
	// ticket does not exist.
	SetStatus(ctx context.Context, id, status string, completedAt *time.Time) (bool, error)

	ListSteps(ctx context.Context, ticketID string) ([]models.TicketStep, error)
	// BootstrapSteps inserts the given rows only if the ticket has no steps
	// yet, re-checking inside one transaction. It returns the ticket's final
	// step set either way.
	BootstrapSteps(ctx context.Context, ticketID string, steps []models.TicketStep) ([]models.TicketStep, error)
	// UpdateStepResult matches on both step id and ticket id; returns the
	// updated row or nil when nothing matched.
	UpdateStepResult(ctx context.Context, ticketID, stepID string, result *string, checkedAt *time.Time) (*models.TicketStep, error)

	ListNotes(ctx context.Context, ticketID string) ([]models.TicketNote, error)
	AddNote(ctx context.Context, n *models.TicketNote) error
}

type ChatRepository interface {
	Threads(ctx context.Context, userID string) ([]models.ChatThread, error)
	Messages(ctx context.Context, userID, otherUserID string) ([]models.ChatMessage, error)
	Send(ctx context.Context, m *models.ChatMessage) error
}
