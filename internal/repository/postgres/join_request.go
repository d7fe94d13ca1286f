package postgres

import (
	"context"
	"database/sql"
	"time"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/repository"
)

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

const joinRequestColumns = `id, group_id, user_id, user_email, user_name, status, created_at, processed_at, processed_by`

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	query := `INSERT INTO group_requests (group_id, user_id, user_email, user_name, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		req.GroupID, req.UserID, req.UserEmail, req.UserName, req.Status, time.Now(),
	).Scan(&req.ID)
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id int64) (*domain.JoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM group_requests WHERE id = $1`
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return req, nil
}

func (r *joinRequestRepository) GetPending(ctx context.Context, groupID int64, userID string) (*domain.JoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM group_requests
	          WHERE group_id = $1 AND user_id = $2 AND status = $3`
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, query, groupID, userID, domain.JoinRequestStatusPending))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return req, nil
}

func (r *joinRequestRepository) Update(ctx context.Context, req *domain.JoinRequest) error {
	query := `UPDATE group_requests SET status = $1, processed_at = $2, processed_by = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, req.Status, req.ProcessedAt, req.ProcessedBy, req.ID)
	return err
}

func (r *joinRequestRepository) ListPendingByGroup(ctx context.Context, groupID int64) ([]domain.JoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM group_requests
	          WHERE group_id = $1 AND status = $2 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, groupID, domain.JoinRequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.JoinRequest
	for rows.Next() {
		req, err := scanJoinRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *joinRequestRepository) DeleteByGroup(ctx context.Context, groupID int64) error {
	query := `DELETE FROM group_requests WHERE group_id = $1`
	_, err := r.db.ExecContext(ctx, query, groupID)
	return err
}

func (r *joinRequestRepository) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM group_requests WHERE status <> $1 AND processed_at < $2`
	res, err := r.db.ExecContext(ctx, query, domain.JoinRequestStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanJoinRequest(row rowScanner) (*domain.JoinRequest, error) {
	req := &domain.JoinRequest{}
	var processedAt sql.NullTime
	var processedBy sql.NullString
	err := row.Scan(&req.ID, &req.GroupID, &req.UserID, &req.UserEmail, &req.UserName,
		&req.Status, &req.CreatedAt, &processedAt, &processedBy)
	if err != nil {
		return nil, err
	}
	if processedAt.Valid {
		req.ProcessedAt = &processedAt.Time
	}
	if processedBy.Valid {
		req.ProcessedBy = &processedBy.String
	}
	return req, nil
}
