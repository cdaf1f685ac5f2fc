package postgres

import (
	"context"

	"fieldbook/internal/apperr"
	"fieldbook/internal/models"
	"fieldbook/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepo struct{ db *pgxpool.Pool }

func NewCategoryRepo(db *pgxpool.Pool) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(owner_user_id,''), created_at
		FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.OwnerUserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, owner_user_id, created_at)
		VALUES ($1,$2,$3,$4)`,
		c.ID, c.Name, nullIfEmpty(c.OwnerUserID), c.CreatedAt)
	return err
}

func (r *CategoryRepo) UpdateName(ctx context.Context, id, name string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(ctx, `
		UPDATE categories SET name=$1 WHERE id=$2
		RETURNING id, name, COALESCE(owner_user_id,''), created_at`,
		name, id).
		Scan(&c.ID, &c.Name, &c.OwnerUserID, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Delete does not cascade to issues: a dangling category_id on an issue is
// accepted behavior.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
