package postgres

import (
	"context"
	"time"

	"fieldbook/internal/models"
	"fieldbook/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepo struct{ db *pgxpool.Pool }

func NewTicketRepo(db *pgxpool.Pool) repository.TicketRepository { return &TicketRepo{db: db} }

// Ticket reads join catalog and user names live; renames propagate to old
// tickets, only the raw id references are stored.
const ticketCols = `
	t.id, t.status, COALESCE(t.site,''), COALESCE(t.visit_date,''),
	COALESCE(t.category_id,''), COALESCE(c.name,''),
	COALESCE(t.issue_id,''), COALESCE(i.title,''), COALESCE(i.description,''),
	COALESCE(t.issue_text,''),
	COALESCE(t.engineer_user_id,''),
	TRIM(COALESCE(u.first_name,'') || ' ' || COALESCE(u.last_name,'')),
	COALESCE(u.email,''),
	COALESCE(t.created_by_user_id,''),
	TRIM(COALESCE(cu.first_name,'') || ' ' || COALESCE(cu.last_name,'')),
	COALESCE(cu.email,''),
	t.created_at, t.completed_at`

const ticketJoins = `
	FROM tickets t
	LEFT JOIN categories c ON c.id = t.category_id
	LEFT JOIN issues i ON i.id = t.issue_id
	LEFT JOIN users u ON u.id = t.engineer_user_id
	LEFT JOIN users cu ON cu.id = t.created_by_user_id`

func scanTicket(row interface{ Scan(...any) error }, t *models.Ticket) error {
	return row.Scan(
		&t.ID, &t.Status, &t.Site, &t.VisitDate,
		&t.CategoryID, &t.CategoryName,
		&t.IssueID, &t.IssueTitle, &t.IssueDescription,
		&t.Description,
		&t.EngineerUserID, &t.EngineerName, &t.EngineerEmail,
		&t.CreatedByUserID, &t.CreatorName, &t.CreatorEmail,
		&t.CreatedAt, &t.CompletedAt,
	)
}

func (r *TicketRepo) List(ctx context.Context, actor models.Actor) ([]models.Ticket, error) {
	sql := `SELECT ` + ticketCols + ticketJoins
	args := []any{}
	if !actor.IsAdmin() {
		sql += ` WHERE (t.engineer_user_id = $1 OR t.created_by_user_id = $1)`
		args = append(args, actor.ID)
	}
	sql += ` ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := scanTicket(rows, &t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TicketRepo) Get(ctx context.Context, id string) (*models.Ticket, error) {
	var t models.Ticket
	err := scanTicket(r.db.QueryRow(ctx, `SELECT `+ticketCols+ticketJoins+` WHERE t.id=$1`, id), &t)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tickets (
			id, status, site, visit_date,
			category_id, issue_id, issue_text,
			engineer_user_id, created_by_user_id,
			created_at, completed_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		t.ID, t.Status, nullIfEmpty(t.Site), nullIfEmpty(t.VisitDate),
		nullIfEmpty(t.CategoryID), nullIfEmpty(t.IssueID), nullIfEmpty(t.Description),
		nullIfEmpty(t.EngineerUserID), t.CreatedByUserID,
		t.CreatedAt, t.CompletedAt)
	return err
}

func (r *TicketRepo) SetStatus(ctx context.Context, id, status string, completedAt *time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`UPDATE tickets SET status=$1, completed_at=$2 WHERE id=$3`,
		status, completedAt, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

const stepOrder = ` ORDER BY step_index ASC NULLS LAST, created_at ASC`

func (r *TicketRepo) ListSteps(ctx context.Context, ticketID string) ([]models.TicketStep, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, ticket_id, step_index, step_text, result, checked_at, created_at
		FROM ticket_steps WHERE ticket_id=$1`+stepOrder, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TicketStep
	for rows.Next() {
		var s models.TicketStep
		if err := rows.Scan(&s.ID, &s.TicketID, &s.StepIndex, &s.StepText,
			&s.Result, &s.CheckedAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// BootstrapSteps is idempotent by presence: once a ticket has any steps, the
// call returns them unchanged. The check and the batch insert run in one
// transaction, and the (ticket_id, step_index) unique index makes a
// concurrent double-bootstrap lose cleanly, so at most one call ever inserts.
func (r *TicketRepo) BootstrapSteps(ctx context.Context, ticketID string, steps []models.TicketStep) ([]models.TicketStep, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var n int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM ticket_steps WHERE ticket_id=$1`, ticketID).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		for _, s := range steps {
			if _, err := tx.Exec(ctx, `
				INSERT INTO ticket_steps (id, ticket_id, step_index, step_text, result, checked_at, created_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				s.ID, s.TicketID, s.StepIndex, s.StepText, s.Result, s.CheckedAt, s.CreatedAt); err != nil {
				if isUniqueViolation(err) {
					// Lost the race; the winner's rows stand.
					_ = tx.Rollback(ctx)
					return r.ListSteps(ctx, ticketID)
				}
				return nil, err
			}
		}
		if err := tx.Commit(ctx); err != nil {
			if isUniqueViolation(err) {
				return r.ListSteps(ctx, ticketID)
			}
			return nil, err
		}
		return r.ListSteps(ctx, ticketID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.ListSteps(ctx, ticketID)
}

func (r *TicketRepo) UpdateStepResult(ctx context.Context, ticketID, stepID string, result *string, checkedAt *time.Time) (*models.TicketStep, error) {
	var s models.TicketStep
	// Matching on both ids defends against a step id from another ticket.
	err := r.db.QueryRow(ctx, `
		UPDATE ticket_steps SET result=$1, checked_at=$2
		WHERE id=$3 AND ticket_id=$4
		RETURNING id, ticket_id, step_index, step_text, result, checked_at, created_at`,
		result, checkedAt, stepID, ticketID).
		Scan(&s.ID, &s.TicketID, &s.StepIndex, &s.StepText, &s.Result, &s.CheckedAt, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *TicketRepo) ListNotes(ctx context.Context, ticketID string) ([]models.TicketNote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, ticket_id, note_text, created_at
		FROM ticket_notes WHERE ticket_id=$1 ORDER BY created_at ASC`, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TicketNote
	for rows.Next() {
		var n models.TicketNote
		if err := rows.Scan(&n.ID, &n.TicketID, &n.NoteText, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *TicketRepo) AddNote(ctx context.Context, n *models.TicketNote) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ticket_notes (id, ticket_id, note_text, created_at)
		VALUES ($1,$2,$3,$4)`,
		n.ID, n.TicketID, n.NoteText, n.CreatedAt)
	return err
}
