package postgres

import (
	"context"
	"database/sql"
	"time"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/repository"
)

type groupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

const groupColumns = `id, name, description, visibility, status, created_by, created_by_email, current_admin, member_count, created_at`

func (r *groupRepository) Create(ctx context.Context, g *domain.Group) error {
	query := `INSERT INTO study_groups (name, description, visibility, status, created_by, created_by_email, member_count, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		g.Name, g.Description, g.Visibility, g.Status, g.CreatedBy, g.CreatedByEmail, g.MemberCount, time.Now(),
	).Scan(&g.ID)
}

func (r *groupRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM study_groups WHERE id = $1`
	g, err := scanGroup(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return g, nil
}

func (r *groupRepository) List(ctx context.Context) ([]domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM study_groups ORDER BY created_at DESC`
	return r.queryGroups(ctx, query)
}

func (r *groupRepository) ListByCreator(ctx context.Context, userID string) ([]domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM study_groups WHERE created_by = $1 ORDER BY created_at DESC`
	return r.queryGroups(ctx, query, userID)
}

func (r *groupRepository) ListByStatus(ctx context.Context, status domain.GroupStatus) ([]domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM study_groups WHERE status = $1 ORDER BY created_at DESC`
	return r.queryGroups(ctx, query, status)
}

func (r *groupRepository) UpdateSettings(ctx context.Context, id int64, s domain.GroupSettings) error {
	query := `UPDATE study_groups SET
	            name = COALESCE($1, name),
	            description = COALESCE($2, description),
	            visibility = COALESCE($3, visibility)
	          WHERE id = $4`
	var visibility *string
	if s.Visibility != nil {
		v := string(*s.Visibility)
		visibility = &v
	}
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Description, visibility, id)
	return err
}

func (r *groupRepository) UpdateStatus(ctx context.Context, id int64, status domain.GroupStatus) error {
	query := `UPDATE study_groups SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *groupRepository) SetCurrentAdmin(ctx context.Context, id int64, userID string) error {
	query := `UPDATE study_groups SET current_admin = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, id)
	return err
}

func (r *groupRepository) SetMemberCount(ctx context.Context, id int64, count int32) error {
	query := `UPDATE study_groups SET member_count = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, count, id)
	return err
}

func (r *groupRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM study_groups WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *groupRepository) queryGroups(ctx context.Context, query string, args ...any) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (*domain.Group, error) {
	g := &domain.Group{}
	var currentAdmin sql.NullString
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Visibility, &g.Status,
		&g.CreatedBy, &g.CreatedByEmail, &currentAdmin, &g.MemberCount, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	g.CurrentAdmin = currentAdmin.String
	return g, nil
}
