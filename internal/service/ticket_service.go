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

// TicketService is the lifecycle engine: ticket creation and listing,
// status transitions, the checklist snapshot, step results and notes.
type TicketService struct {
	tickets repository.TicketRepository
	issues  repository.IssueRepository
}

func NewTicketService(tickets repository.TicketRepository, issues repository.IssueRepository) *TicketService {
	return &TicketService{tickets: tickets, issues: issues}
}

type CreateTicketInput struct {
	Site           string
	VisitDate      string
	CategoryID     string
	IssueID        string
	Description    string
	EngineerUserID string
}

// Create is deliberately permissive: every field may be empty except the
// creator. The UI requires category and description, the core does not.
func (s *TicketService) Create(ctx context.Context, actor models.Actor, in CreateTicketInput) (*models.Ticket, error) {
	t := &models.Ticket{
		ID:              utils.NewID("t_"),
		Status:          models.StatusOpen,
		Site:            strings.TrimSpace(in.Site),
		VisitDate:       strings.TrimSpace(in.VisitDate),
		CategoryID:      strings.TrimSpace(in.CategoryID),
		IssueID:         strings.TrimSpace(in.IssueID),
		Description:     strings.TrimSpace(in.Description),
		EngineerUserID:  strings.TrimSpace(in.EngineerUserID),
		CreatedByUserID: actor.ID,
		CreatedAt:       time.Now().UTC(),
		CompletedAt:     nil,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.tickets.Get(ctx, t.ID)
}

func (s *TicketService) List(ctx context.Context, actor models.Actor) ([]models.Ticket, error) {
	return s.tickets.List(ctx, actor)
}

// SetStatus is a direct overwrite, not a guarded transition: closing a closed
// ticket refreshes completed_at, reopening clears it.
func (s *TicketService) SetStatus(ctx context.Context, id, status string) (*models.Ticket, error) {
	status = strings.TrimSpace(status)
	if status != models.StatusOpen && status != models.StatusClosed {
		return nil, apperr.Invalid("status must be open|closed")
	}

	var completedAt *time.Time
	if status == models.StatusClosed {
		now := time.Now().UTC()
		completedAt = &now
	}

	ok, err := s.tickets.SetStatus(ctx, id, status, completedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return s.tickets.Get(ctx, id)
}

// BootstrapSteps snapshots the given step texts onto the ticket. Blank
// entries are dropped after trimming; surviving entries get 0-based ordinals.
// If the ticket already has steps this is a no-op regardless of input — the
// checklist is sticky per ticket, which callers must treat as documented
// behavior rather than a failure.
func (s *TicketService) BootstrapSteps(ctx context.Context, ticketID string, texts []string) ([]models.TicketStep, error) {
	now := time.Now().UTC()
	var rows []models.TicketStep
	for _, raw := range texts {
		txt := strings.TrimSpace(raw)
		if txt == "" {
			continue
		}
		idx := len(rows)
		rows = append(rows, models.TicketStep{
			ID:        utils.NewID("ts_"),
			TicketID:  ticketID,
			StepIndex: &idx,
			StepText:  txt,
			CreatedAt: now,
		})
	}
	return s.tickets.BootstrapSteps(ctx, ticketID, rows)
}

func (s *TicketService) ListSteps(ctx context.Context, ticketID string) ([]models.TicketStep, error) {
	return s.tickets.ListSteps(ctx, ticketID)
}

// UpdateStepResult maps true→pass, false→fail, nil→unset. checked_at tracks
// the result: set when a result lands, cleared when the result clears.
func (s *TicketService) UpdateStepResult(ctx context.Context, ticketID, stepID string, result *bool) (*models.TicketStep, error) {
	var res *string
	var checkedAt *time.Time
	if result != nil {
		v := models.StepFail
		if *result {
			v = models.StepPass
		}
		res = &v
		now := time.Now().UTC()
		checkedAt = &now
	}

	step, err := s.tickets.UpdateStepResult(ctx, ticketID, stepID, res, checkedAt)
	if err != nil {
		return nil, err
	}
	if step == nil {
		return nil, apperr.ErrNotFound
	}
	return step, nil
}

func (s *TicketService) AddNote(ctx context.Context, ticketID, text string) (*models.TicketNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Invalid("note_text is required")
	}
	n := &models.TicketNote{
		ID:        utils.NewID("tn_"),
		TicketID:  ticketID,
		NoteText:  text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tickets.AddNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *TicketService) ListNotes(ctx context.Context, ticketID string) ([]models.TicketNote, error) {
	return s.tickets.ListNotes(ctx, ticketID)
}

// BuildReport is a pure read: ticket metadata, the ordered checklist, notes
// in chronological order and the template solution. A ticket outside the
// actor's visibility reads as not found.
func (s *TicketService) BuildReport(ctx context.Context, actor models.Actor, ticketID string) (*models.Report, error) {
	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil || !actor.CanSee(t) {
		return nil, apperr.ErrNotFound
	}

	steps, err := s.tickets.ListSteps(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	notes, err := s.tickets.ListNotes(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	var solution string
	if t.IssueID != "" {
		issue, err := s.issues.Get(ctx, t.IssueID)
		if err != nil {
			return nil, err
		}
		if issue != nil {
			solution = issue.Solution
		}
	}

	return &models.Report{Ticket: t, Steps: steps, Notes: notes, Solution: solution}, nil
}
