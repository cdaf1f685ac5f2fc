package postgres

import (
	"context"

	"fieldbook/internal/models"
	"fieldbook/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepo struct{ db *pgxpool.Pool }

func NewChatRepo(db *pgxpool.Pool) repository.ChatRepository { return &ChatRepo{db: db} }

// Threads folds both message directions into one counterparty list with the
// most recent message time per counterparty.
func (r *ChatRepo) Threads(ctx context.Context, userID string) ([]models.ChatThread, error) {
	rows, err := r.db.Query(ctx, `
		WITH pairs AS (
			SELECT
				CASE WHEN from_user_id = $1 THEN to_user_id ELSE from_user_id END AS other_user_id,
				created_at
			FROM chat_messages
			WHERE from_user_id = $1 OR to_user_id = $1
		)
		SELECT p.other_user_id, MAX(p.created_at) AS last_at,
		       COALESCE(u.email,''),
		       TRIM(COALESCE(u.first_name,'') || ' ' || COALESCE(u.last_name,''))
		FROM pairs p
		LEFT JOIN users u ON u.id = p.other_user_id
		GROUP BY p.other_user_id, u.email, u.first_name, u.last_name
		ORDER BY MAX(p.created_at) DESC
		LIMIT 200`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChatThread
	for rows.Next() {
		var t models.ChatThread
		if err := rows.Scan(&t.OtherUserID, &t.LastAt, &t.OtherEmail, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ChatRepo) Messages(ctx context.Context, userID, otherUserID string) ([]models.ChatMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, from_user_id, to_user_id, text, created_at
		FROM chat_messages
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
		ORDER BY created_at ASC
		LIMIT 500`, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ChatRepo) Send(ctx context.Context, m *models.ChatMessage) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_messages (id, from_user_id, to_user_id, text, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		m.ID, m.FromUserID, m.ToUserID, m.Text, m.CreatedAt)
	return err
}
