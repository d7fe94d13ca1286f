package service

import (
	"context"

	"studygroups-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)                      // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	// GetCurrentUser resolves the authenticated user's record. A valid token
	// for a user that no longer exists reports domain.ErrAuthExpired.
	GetCurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

type GroupService interface {
	CreateGroup(ctx context.Context, creatorID, name, description string, visibility domain.GroupVisibility) (*domain.Group, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	GetGroup(ctx context.Context, id int64) (*domain.Group, error)
	ListGroupsByCreator(ctx context.Context, userID string) ([]domain.Group, error)
	UpdateSettings(ctx context.Context, groupID int64, actingUserID string, settings domain.GroupSettings) (*domain.Group, error)
	UpdateStatus(ctx context.Context, groupID int64, actingUserID string, status domain.GroupStatus) error
	TransferOwnership(ctx context.Context, groupID int64, actingUserID, newOwnerID string) error
	DeleteGroup(ctx context.Context, groupID int64, actingUserID string) error
}

// JoinOutcome tells the caller whether a join attempt made the user a member
// immediately or filed a pending request for a private group.
type JoinOutcome string

const (
	JoinOutcomeJoined    JoinOutcome = "joined"
	JoinOutcomeRequested JoinOutcome = "requested"
)

// RequestAction is an admin's verdict on a pending join request.
type RequestAction string

const (
	RequestActionApprove RequestAction = "approve"
	RequestActionReject  RequestAction = "reject"
)

type MembershipService interface {
	// ResolveRole combines creator identity with explicit membership rows.
	// The creator always resolves as admin, even with no stored row.
	ResolveRole(ctx context.Context, groupID int64, userID string) (domain.Role, error)
	Join(ctx context.Context, groupID int64, userID string) (JoinOutcome, error)
	RequestJoin(ctx context.Context, groupID int64, userID string) (JoinOutcome, error)
	ProcessRequest(ctx context.Context, requestID int64, action RequestAction, actingUserID string) (*domain.JoinRequest, error)
	Leave(ctx context.Context, groupID int64, userID string) error
	Promote(ctx context.Context, groupID int64, actingUserID, targetUserID string) error
	Demote(ctx context.Context, groupID int64, actingUserID, targetUserID string) error
	Remove(ctx context.Context, groupID int64, actingUserID, targetUserID string) error
	ListMembers(ctx context.Context, groupID int64, actingUserID string) ([]domain.Membership, error)
	ListPendingRequests(ctx context.Context, groupID int64, actingUserID string) ([]domain.JoinRequest, error)
	// RecountMembers re-derives the cached member count from membership rows
	// and persists it. Best-effort convergence, not a transaction.
	RecountMembers(ctx context.Context, groupID int64) (int64, error)
}

type MessageService interface {
	Send(ctx context.Context, groupID int64, userID, body string) (*domain.Message, error)
	List(ctx context.Context, groupID int64, userID string) ([]domain.Message, error)
}

type EmailService interface {
	// SendRequestNotice tells the group's contact address that a new join
	// request is waiting.
	SendRequestNotice(ctx context.Context, adminEmail, requesterName, groupName string) error
	// SendRequestOutcome tells the requester whether they were approved.
	SendRequestOutcome(ctx context.Context, email, name, groupName string, approved bool) error
}
