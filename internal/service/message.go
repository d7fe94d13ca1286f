package service

import (
	"context"
	"errors"
	"fmt"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/repository"
)

type messageService struct {
	groupRepo  repository.GroupRepository
	memberRepo repository.MembershipRepository
	msgRepo    repository.MessageRepository
	userRepo   repository.UserRepository
}

func NewMessageService(
	groupRepo repository.GroupRepository,
	memberRepo repository.MembershipRepository,
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) MessageService {
	return &messageService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		msgRepo:    msgRepo,
		userRepo:   userRepo,
	}
}

func (s *messageService) Send(ctx context.Context, groupID int64, userID, body string) (*domain.Message, error) {
	if body == "" {
		return nil, fmt.Errorf("message body must not be empty")
	}
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthExpired
		}
		return nil, err
	}

	msg := &domain.Message{
		GroupID:   groupID,
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.DisplayName(),
		Body:      body,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

func (s *messageService) List(ctx context.Context, groupID int64, userID string) ([]domain.Message, error) {
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.msgRepo.ListByGroup(ctx, groupID)
}

func (s *messageService) requireMember(ctx context.Context, groupID int64, userID string) error {
	role, err := resolveRole(ctx, s.groupRepo, s.memberRepo, groupID, userID)
	if err != nil {
		return err
	}
	if role == domain.RoleNone {
		return domain.ErrForbidden
	}
	return nil
}
