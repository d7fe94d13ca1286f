package service

import (
	"context"
	"errors"
	"fmt"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/logger"
	"studygroups-backend/internal/repository"
)

type groupService struct {
	groupRepo  repository.GroupRepository
	memberRepo repository.MembershipRepository
	reqRepo    repository.JoinRequestRepository
	msgRepo    repository.MessageRepository
	userRepo   repository.UserRepository
	members    MembershipService
}

func NewGroupService(
	groupRepo repository.GroupRepository,
	memberRepo repository.MembershipRepository,
	reqRepo repository.JoinRequestRepository,
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	members MembershipService,
) GroupService {
	return &groupService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		reqRepo:    reqRepo,
		msgRepo:    msgRepo,
		userRepo:   userRepo,
		members:    members,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, creatorID, name, description string, visibility domain.GroupVisibility) (*domain.Group, error) {
	creator, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthExpired
		}
		return nil, err
	}

	if visibility == "" {
		visibility = domain.GroupVisibilityPublic
	}
	group := &domain.Group{
		Name:           name,
		Description:    description,
		Visibility:     visibility,
		Status:         domain.GroupStatusActive,
		CreatedBy:      creator.ID,
		CreatedByEmail: creator.Email,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	// The creator gets an explicit admin row on top of the implicit
	// creator-is-admin rule, so member listings and counts include them.
	m := &domain.Membership{
		GroupID:   group.ID,
		UserID:    creator.ID,
		Role:      domain.RoleAdmin,
		UserEmail: creator.Email,
		UserName:  creator.DisplayName(),
	}
	if err := s.memberRepo.Create(ctx, m); err != nil {
		logger.Warn("failed to add creator membership", "group_id", group.ID, "error", err)
	} else if count, err := s.members.RecountMembers(ctx, group.ID); err != nil {
		logger.Warn("member recount failed", "group_id", group.ID, "error", err)
	} else {
		group.MemberCount = int32(count)
	}

	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *groupService) GetGroup(ctx context.Context, id int64) (*domain.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *groupService) ListGroupsByCreator(ctx context.Context, userID string) ([]domain.Group, error) {
	return s.groupRepo.ListByCreator(ctx, userID)
}

func (s *groupService) UpdateSettings(ctx context.Context, groupID int64, actingUserID string, settings domain.GroupSettings) (*domain.Group, error) {
	if err := s.requireAdmin(ctx, groupID, actingUserID); err != nil {
		return nil, err
	}
	if settings.Visibility != nil {
		if v := *settings.Visibility; v != domain.GroupVisibilityPublic && v != domain.GroupVisibilityPrivate {
			return nil, fmt.Errorf("invalid visibility %q", v)
		}
	}
	if err := s.groupRepo.UpdateSettings(ctx, groupID, settings); err != nil {
		return nil, fmt.Errorf("failed to update group settings: %w", err)
	}
	return s.groupRepo.GetByID(ctx, groupID)
}

func (s *groupService) UpdateStatus(ctx context.Context, groupID int64, actingUserID string, status domain.GroupStatus) error {
	if status != domain.GroupStatusActive && status != domain.GroupStatusArchived {
		return fmt.Errorf("invalid group status %q", status)
	}
	if err := s.requireAdmin(ctx, groupID, actingUserID); err != nil {
		return err
	}
	return s.groupRepo.UpdateStatus(ctx, groupID, status)
}

func (s *groupService) TransferOwnership(ctx context.Context, groupID int64, actingUserID, newOwnerID string) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	// Only the creator or the currently designated admin can hand the group
	// off.
	if group.CreatedBy != actingUserID && group.CurrentAdmin != actingUserID {
		return domain.ErrForbidden
	}

	newOwner, err := s.userRepo.GetByID(ctx, newOwnerID)
	if err != nil {
		return err
	}

	if err := s.groupRepo.SetCurrentAdmin(ctx, groupID, newOwner.ID); err != nil {
		return fmt.Errorf("failed to set group admin: %w", err)
	}

	m := &domain.Membership{
		GroupID:   groupID,
		UserID:    newOwner.ID,
		Role:      domain.RoleAdmin,
		UserEmail: newOwner.Email,
		UserName:  newOwner.DisplayName(),
	}
	if err := s.memberRepo.Upsert(ctx, m); err != nil {
		return fmt.Errorf("failed to grant admin membership: %w", err)
	}
	return nil
}

// DeleteGroup cascades in a fixed order so no orphaned child rows can be
// observed: a failure at any step aborts before the parent is touched.
func (s *groupService) DeleteGroup(ctx context.Context, groupID int64, actingUserID string) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.CreatedBy != actingUserID {
		return domain.ErrForbidden
	}

	if err := s.reqRepo.DeleteByGroup(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete join requests: %w", err)
	}
	if err := s.msgRepo.DeleteByGroup(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if err := s.memberRepo.DeleteByGroup(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}
	if err := s.groupRepo.Delete(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

func (s *groupService) requireAdmin(ctx context.Context, groupID int64, userID string) error {
	role, err := resolveRole(ctx, s.groupRepo, s.memberRepo, groupID, userID)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
