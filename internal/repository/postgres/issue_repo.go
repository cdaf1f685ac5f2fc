package postgres

import (
	"context"

	"fieldbook/internal/apperr"
	"fieldbook/internal/models"
	"fieldbook/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IssueRepo struct{ db *pgxpool.Pool }

func NewIssueRepo(db *pgxpool.Pool) repository.IssueRepository { return &IssueRepo{db: db} }

const issueCols = `
	i.id, i.category_id, COALESCE(c.name,''), i.title, i.description,
	i.steps_text, i.solution, i.created_at`

func (r *IssueRepo) List(ctx context.Context, categoryID string) ([]models.Issue, error) {
	sql := `
		SELECT ` + issueCols + `
		FROM issues i
		LEFT JOIN categories c ON c.id = i.category_id`
	args := []any{}
	if categoryID != "" {
		sql += ` WHERE i.category_id=$1`
		args = append(args, categoryID)
	}
	sql += ` ORDER BY i.created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Issue
	for rows.Next() {
		var i models.Issue
		if err := rows.Scan(&i.ID, &i.CategoryID, &i.CategoryName, &i.Title,
			&i.Description, &i.StepsText, &i.Solution, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *IssueRepo) Get(ctx context.Context, id string) (*models.Issue, error) {
	var i models.Issue
	err := r.db.QueryRow(ctx, `
		SELECT `+issueCols+`
		FROM issues i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.id=$1`, id).
		Scan(&i.ID, &i.CategoryID, &i.CategoryName, &i.Title,
			&i.Description, &i.StepsText, &i.Solution, &i.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *IssueRepo) Create(ctx context.Context, i *models.Issue) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO issues (id, category_id, title, description, steps_text, solution, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		i.ID, i.CategoryID, i.Title, i.Description, i.StepsText, i.Solution, i.CreatedAt)
	return err
}

func (r *IssueRepo) Update(ctx context.Context, i *models.Issue) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE issues SET category_id=$1, title=$2, description=$3, steps_text=$4, solution=$5
		WHERE id=$6`,
		i.CategoryID, i.Title, i.Description, i.StepsText, i.Solution, i.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *IssueRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM issues WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
