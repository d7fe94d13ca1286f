package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO group_messages (group_id, user_id, user_email, user_name, body, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		msg.GroupID, msg.UserID, msg.UserEmail, msg.UserName, msg.Body, time.Now(),
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *messageRepository) ListByGroup(ctx context.Context, groupID int64) ([]domain.Message, error) {
	query := `SELECT id, group_id, user_id, user_email, user_name, body, created_at
	          FROM group_messages WHERE group_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.UserEmail, &m.UserName, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *messageRepository) LatestByGroup(ctx context.Context, groupID int64) (time.Time, error) {
	var latest time.Time
	query := `SELECT created_at FROM group_messages WHERE group_id = $1 ORDER BY created_at DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, groupID).Scan(&latest)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	return latest, err
}

func (r *messageRepository) DeleteByGroup(ctx context.Context, groupID int64) error {
	query := `DELETE FROM group_messages WHERE group_id = $1`
	_, err := r.db.ExecContext(ctx, query, groupID)
	return err
}
