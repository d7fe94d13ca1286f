package repository

import (
	"context"
	"time"

	"studygroups-backend/internal/domain"
)

// Single-row lookups return domain.ErrNotFound (wrapping sql.ErrNoRows)
// when nothing matches.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	ListByCreator(ctx context.Context, userID string) ([]domain.Group, error)
	ListByStatus(ctx context.Context, status domain.GroupStatus) ([]domain.Group, error)
	UpdateSettings(ctx context.Context, id int64, settings domain.GroupSettings) error
	UpdateStatus(ctx context.Context, id int64, status domain.GroupStatus) error
	SetCurrentAdmin(ctx context.Context, id int64, userID string) error
	SetMemberCount(ctx context.Context, id int64, count int32) error
	Delete(ctx context.Context, id int64) error
}

type MembershipRepository interface {
	Create(ctx context.Context, m *domain.Membership) error
	// Upsert inserts the row or, when the (group, user) pair already exists,
	// updates its role.
	Upsert(ctx context.Context, m *domain.Membership) error
	Get(ctx context.Context, groupID int64, userID string) (*domain.Membership, error)
	UpdateRole(ctx context.Context, groupID int64, userID string, role domain.Role) error
	Delete(ctx context.Context, groupID int64, userID string) error
	DeleteByGroup(ctx context.Context, groupID int64) error
	ListByGroup(ctx context.Context, groupID int64) ([]domain.Membership, error)
	CountByGroup(ctx context.Context, groupID int64) (int64, error)
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.JoinRequest) error
	GetByID(ctx context.Context, id int64) (*domain.JoinRequest, error)
	// GetPending finds the user's pending request for the group, if any.
	GetPending(ctx context.Context, groupID int64, userID string) (*domain.JoinRequest, error)
	Update(ctx context.Context, req *domain.JoinRequest) error
	ListPendingByGroup(ctx context.Context, groupID int64) ([]domain.JoinRequest, error)
	DeleteByGroup(ctx context.Context, groupID int64) error
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByGroup(ctx context.Context, groupID int64) ([]domain.Message, error)
	// LatestByGroup returns the newest message's creation time, or the zero
	// time when the group has no messages.
	LatestByGroup(ctx context.Context, groupID int64) (time.Time, error)
	DeleteByGroup(ctx context.Context, groupID int64) error
}
