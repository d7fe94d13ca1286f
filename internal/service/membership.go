package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/logger"
	"studygroups-backend/internal/repository"
	"studygroups-backend/internal/retry"
)

// ErrInvalidAction reports an unrecognized join-request verdict.
var ErrInvalidAction = errors.New("invalid request action")

type membershipService struct {
	groupRepo  repository.GroupRepository
	memberRepo repository.MembershipRepository
	reqRepo    repository.JoinRequestRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
	recount    retry.Policy
}

func NewMembershipService(
	groupRepo repository.GroupRepository,
	memberRepo repository.MembershipRepository,
	reqRepo repository.JoinRequestRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	recount retry.Policy,
) MembershipService {
	return &membershipService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
		recount:    recount,
	}
}

func (s *membershipService) ResolveRole(ctx context.Context, groupID int64, userID string) (domain.Role, error) {
	return resolveRole(ctx, s.groupRepo, s.memberRepo, groupID, userID)
}

func (s *membershipService) Join(ctx context.Context, groupID int64, userID string) (JoinOutcome, error) {
	group, user, err := s.load(ctx, groupID, userID)
	if err != nil {
		return "", err
	}

	if group.CreatedBy == user.ID {
		return "", domain.ErrAlreadyCreator
	}
	if err := s.requireNotMember(ctx, group.ID, user.ID); err != nil {
		return "", err
	}

	// Private groups never admit directly; the join becomes a request.
	if group.Visibility == domain.GroupVisibilityPrivate {
		return s.fileRequest(ctx, group, user)
	}
	return s.admit(ctx, group, user)
}

func (s *membershipService) RequestJoin(ctx context.Context, groupID int64, userID string) (JoinOutcome, error) {
	group, user, err := s.load(ctx, groupID, userID)
	if err != nil {
		return "", err
	}

	if err := s.requireNotMember(ctx, group.ID, user.ID); err != nil {
		return "", err
	}

	// Public groups don't take requests; the request becomes a join.
	if group.Visibility == domain.GroupVisibilityPublic {
		if group.CreatedBy == user.ID {
			return "", domain.ErrAlreadyCreator
		}
		return s.admit(ctx, group, user)
	}
	return s.fileRequest(ctx, group, user)
}

func (s *membershipService) ProcessRequest(ctx context.Context, requestID int64, action RequestAction, actingUserID string) (*domain.JoinRequest, error) {
	if action != RequestActionApprove && action != RequestActionReject {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	// A request that was already approved or rejected is no longer
	// actionable.
	if req.Status != domain.JoinRequestStatusPending {
		return nil, domain.ErrNotFound
	}

	group, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	role, err := resolveRoleInGroup(ctx, s.memberRepo, group, actingUserID)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	req.ProcessedAt = &now
	req.ProcessedBy = &actingUserID
	if action == RequestActionApprove {
		req.Status = domain.JoinRequestStatusApproved
	} else {
		req.Status = domain.JoinRequestStatusRejected
	}
	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update join request: %w", err)
	}

	if action == RequestActionApprove {
		m := &domain.Membership{
			GroupID:   req.GroupID,
			UserID:    req.UserID,
			Role:      domain.RoleMember,
			UserEmail: req.UserEmail,
			UserName:  req.UserName,
		}
		if err := s.memberRepo.Upsert(ctx, m); err != nil {
			return nil, fmt.Errorf("failed to add approved member: %w", err)
		}
		s.recountAndStore(ctx, req.GroupID)
	}

	if s.emailSvc != nil {
		_ = s.emailSvc.SendRequestOutcome(ctx, req.UserEmail, req.UserName, group.Name, action == RequestActionApprove)
	}
	return req, nil
}

func (s *membershipService) Leave(ctx context.Context, groupID int64, userID string) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.CreatedBy == userID {
		return domain.ErrCreatorCannotLeave
	}

	if err := s.memberRepo.Delete(ctx, groupID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotAMember
		}
		return fmt.Errorf("failed to remove membership: %w", err)
	}
	s.recountAndStore(ctx, groupID)
	return nil
}

func (s *membershipService) Promote(ctx context.Context, groupID int64, actingUserID, targetUserID string) error {
	return s.changeRole(ctx, groupID, actingUserID, targetUserID, domain.RoleAdmin)
}

func (s *membershipService) Demote(ctx context.Context, groupID int64, actingUserID, targetUserID string) error {
	return s.changeRole(ctx, groupID, actingUserID, targetUserID, domain.RoleMember)
}

func (s *membershipService) changeRole(ctx context.Context, groupID int64, actingUserID, targetUserID string, role domain.Role) error {
	group, err := s.requireAdmin(ctx, groupID, actingUserID)
	if err != nil {
		return err
	}
	// The creator's admin status is implicit and not subject to role edits.
	if group.CreatedBy == targetUserID {
		return domain.ErrForbidden
	}
	if err := s.memberRepo.UpdateRole(ctx, groupID, targetUserID, role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotAMember
		}
		return fmt.Errorf("failed to update member role: %w", err)
	}
	return nil
}

func (s *membershipService) Remove(ctx context.Context, groupID int64, actingUserID, targetUserID string) error {
	group, err := s.requireAdmin(ctx, groupID, actingUserID)
	if err != nil {
		return err
	}
	if group.CreatedBy == targetUserID {
		return domain.ErrForbidden
	}
	if err := s.memberRepo.Delete(ctx, groupID, targetUserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotAMember
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	s.recountAndStore(ctx, groupID)
	return nil
}

func (s *membershipService) ListMembers(ctx context.Context, groupID int64, actingUserID string) ([]domain.Membership, error) {
	role, err := s.ResolveRole(ctx, groupID, actingUserID)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleNone {
		return nil, domain.ErrForbidden
	}
	return s.memberRepo.ListByGroup(ctx, groupID)
}

func (s *membershipService) ListPendingRequests(ctx context.Context, groupID int64, actingUserID string) ([]domain.JoinRequest, error) {
	if _, err := s.requireAdmin(ctx, groupID, actingUserID); err != nil {
		return nil, err
	}
	return s.reqRepo.ListPendingByGroup(ctx, groupID)
}

func (s *membershipService) RecountMembers(ctx context.Context, groupID int64) (int64, error) {
	count, err := s.recount.StableCount(ctx, func(ctx context.Context) (int64, error) {
		return s.memberRepo.CountByGroup(ctx, groupID)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	if err := s.groupRepo.SetMemberCount(ctx, groupID, int32(count)); err != nil {
		return 0, fmt.Errorf("failed to store member count: %w", err)
	}
	return count, nil
}

// load fetches the group and the acting user. A missing user means the
// session refers to an account that no longer exists.
func (s *membershipService) load(ctx context.Context, groupID int64, userID string) (*domain.Group, *domain.User, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrAuthExpired
		}
		return nil, nil, err
	}
	return group, user, nil
}

func (s *membershipService) requireNotMember(ctx context.Context, groupID int64, userID string) error {
	_, err := s.memberRepo.Get(ctx, groupID, userID)
	if err == nil {
		return domain.ErrAlreadyMember
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	return nil
}

func (s *membershipService) requireAdmin(ctx context.Context, groupID int64, userID string) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	role, err := resolveRoleInGroup(ctx, s.memberRepo, group, userID)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return group, nil
}

func (s *membershipService) admit(ctx context.Context, group *domain.Group, user *domain.User) (JoinOutcome, error) {
	m := &domain.Membership{
		GroupID:   group.ID,
		UserID:    user.ID,
		Role:      domain.RoleMember,
		UserEmail: user.Email,
		UserName:  user.DisplayName(),
	}
	if err := s.memberRepo.Create(ctx, m); err != nil {
		return "", fmt.Errorf("failed to add member: %w", err)
	}
	s.recountAndStore(ctx, group.ID)
	return JoinOutcomeJoined, nil
}

func (s *membershipService) fileRequest(ctx context.Context, group *domain.Group, user *domain.User) (JoinOutcome, error) {
	existing, err := s.reqRepo.GetPending(ctx, group.ID, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("failed to check pending requests: %w", err)
	}
	if existing != nil {
		return "", domain.ErrAlreadyRequested
	}

	req := &domain.JoinRequest{
		GroupID:   group.ID,
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.DisplayName(),
		Status:    domain.JoinRequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return "", fmt.Errorf("failed to create join request: %w", err)
	}

	if s.emailSvc != nil {
		_ = s.emailSvc.SendRequestNotice(ctx, group.CreatedByEmail, user.DisplayName(), group.Name)
	}
	return JoinOutcomeRequested, nil
}

// recountAndStore refreshes the cached member count after a membership
// mutation. The mutation itself already succeeded, so a failed recount is
// logged and left to the reconciliation job rather than failing the call.
func (s *membershipService) recountAndStore(ctx context.Context, groupID int64) {
	if _, err := s.RecountMembers(ctx, groupID); err != nil {
		logger.Warn("member recount failed", "group_id", groupID, "error", err)
	}
}
