package postgres

import (
	"context"
	"database/sql"
	"time"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO group_members (group_id, user_id, role, user_email, user_name, joined_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, m.GroupID, m.UserID, m.Role, m.UserEmail, m.UserName, time.Now())
	return err
}

func (r *membershipRepository) Upsert(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO group_members (group_id, user_id, role, user_email, user_name, joined_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (group_id, user_id) DO UPDATE SET role = EXCLUDED.role`
	_, err := r.db.ExecContext(ctx, query, m.GroupID, m.UserID, m.Role, m.UserEmail, m.UserName, time.Now())
	return err
}

func (r *membershipRepository) Get(ctx context.Context, groupID int64, userID string) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT group_id, user_id, role, user_email, user_name, joined_at
	          FROM group_members WHERE group_id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, groupID, userID).
		Scan(&m.GroupID, &m.UserID, &m.Role, &m.UserEmail, &m.UserName, &m.JoinedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipRepository) UpdateRole(ctx context.Context, groupID int64, userID string, role domain.Role) error {
	query := `UPDATE group_members SET role = $1 WHERE group_id = $2 AND user_id = $3`
	res, err := r.db.ExecContext(ctx, query, role, groupID, userID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *membershipRepository) Delete(ctx context.Context, groupID int64, userID string) error {
	query := `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *membershipRepository) DeleteByGroup(ctx context.Context, groupID int64) error {
	query := `DELETE FROM group_members WHERE group_id = $1`
	_, err := r.db.ExecContext(ctx, query, groupID)
	return err
}

func (r *membershipRepository) ListByGroup(ctx context.Context, groupID int64) ([]domain.Membership, error) {
	query := `SELECT group_id, user_id, role, user_email, user_name, joined_at
	          FROM group_members WHERE group_id = $1 ORDER BY joined_at ASC`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.Role, &m.UserEmail, &m.UserName, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membershipRepository) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM group_members WHERE group_id = $1`
	err := r.db.QueryRowContext(ctx, query, groupID).Scan(&count)
	return count, err
}

// requireRows turns a zero-row mutation into domain.ErrNotFound so callers
// can tell "row absent" from "update applied".
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
