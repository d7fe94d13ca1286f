package postgres

import (
	"database/sql"
	"errors"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/repository"
)

// Store bundles all repository implementations over one database handle.
type Store struct {
	UserRepository        repository.UserRepository
	GroupRepository       repository.GroupRepository
	MembershipRepository  repository.MembershipRepository
	JoinRequestRepository repository.JoinRequestRepository
	MessageRepository     repository.MessageRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		UserRepository:        NewUserRepository(db),
		GroupRepository:       NewGroupRepository(db),
		MembershipRepository:  NewMembershipRepository(db),
		JoinRequestRepository: NewJoinRequestRepository(db),
		MessageRepository:     NewMessageRepository(db),
	}
}

// mapNotFound converts the driver's no-rows error into the domain sentinel
// so services never see database/sql.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
