package service

import (
	"context"
	"errors"
	"fmt"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/repository"
)

// resolveRole determines a user's effective role in a group. Creator status
// wins over any explicit membership row, so a creator resolves as admin even
// when no row exists or a row carries a different role.
func resolveRole(ctx context.Context, groups repository.GroupRepository, members repository.MembershipRepository, groupID int64, userID string) (domain.Role, error) {
	group, err := groups.GetByID(ctx, groupID)
	if err != nil {
		return domain.RoleNone, err
	}
	return resolveRoleInGroup(ctx, members, group, userID)
}

// resolveRoleInGroup is the same resolution against an already-loaded group.
func resolveRoleInGroup(ctx context.Context, members repository.MembershipRepository, group *domain.Group, userID string) (domain.Role, error) {
	if group.CreatedBy == userID {
		return domain.RoleAdmin, nil
	}
	m, err := members.Get(ctx, group.ID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, fmt.Errorf("failed to look up membership: %w", err)
	}
	return m.Role, nil
}
