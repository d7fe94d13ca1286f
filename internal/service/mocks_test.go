package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockGroupRepo
type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}
func (m *MockGroupRepo) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupRepo) List(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupRepo) ListByCreator(ctx context.Context, userID string) ([]domain.Group, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupRepo) ListByStatus(ctx context.Context, status domain.GroupStatus) ([]domain.Group, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupRepo) UpdateSettings(ctx context.Context, id int64, settings domain.GroupSettings) error {
	args := m.Called(ctx, id, settings)
	return args.Error(0)
}
func (m *MockGroupRepo) UpdateStatus(ctx context.Context, id int64, status domain.GroupStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockGroupRepo) SetCurrentAdmin(ctx context.Context, id int64, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockGroupRepo) SetMemberCount(ctx context.Context, id int64, count int32) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}
func (m *MockGroupRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMembershipRepo
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) Create(ctx context.Context, mem *domain.Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}
func (m *MockMembershipRepo) Upsert(ctx context.Context, mem *domain.Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}
func (m *MockMembershipRepo) Get(ctx context.Context, groupID int64, userID string) (*domain.Membership, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) UpdateRole(ctx context.Context, groupID int64, userID string, role domain.Role) error {
	args := m.Called(ctx, groupID, userID, role)
	return args.Error(0)
}
func (m *MockMembershipRepo) Delete(ctx context.Context, groupID int64, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}
func (m *MockMembershipRepo) DeleteByGroup(ctx context.Context, groupID int64) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}
func (m *MockMembershipRepo) ListByGroup(ctx context.Context, groupID int64) ([]domain.Membership, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) GetByID(ctx context.Context, id int64) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) GetPending(ctx context.Context, groupID int64, userID string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) Update(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) ListPendingByGroup(ctx context.Context, groupID int64) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) DeleteByGroup(ctx context.Context, groupID int64) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) ListByGroup(ctx context.Context, groupID int64) ([]domain.Message, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) LatestByGroup(ctx context.Context, groupID int64) (time.Time, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockMessageRepo) DeleteByGroup(ctx context.Context, groupID int64) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestNotice(ctx context.Context, adminEmail, requesterName, groupName string) error {
	args := m.Called(ctx, adminEmail, requesterName, groupName)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestOutcome(ctx context.Context, email, name, groupName string, approved bool) error {
	args := m.Called(ctx, email, name, groupName, approved)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

// MockMembershipSvc
type MockMembershipSvc struct {
	mock.Mock
}

func (m *MockMembershipSvc) ResolveRole(ctx context.Context, groupID int64, userID string) (domain.Role, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Get(0).(domain.Role), args.Error(1)
}
func (m *MockMembershipSvc) Join(ctx context.Context, groupID int64, userID string) (JoinOutcome, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Get(0).(JoinOutcome), args.Error(1)
}
func (m *MockMembershipSvc) RequestJoin(ctx context.Context, groupID int64, userID string) (JoinOutcome, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Get(0).(JoinOutcome), args.Error(1)
}
func (m *MockMembershipSvc) ProcessRequest(ctx context.Context, requestID int64, action RequestAction, actingUserID string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, requestID, action, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}
func (m *MockMembershipSvc) Leave(ctx context.Context, groupID int64, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}
func (m *MockMembershipSvc) Promote(ctx context.Context, groupID int64, actingUserID, targetUserID string) error {
	args := m.Called(ctx, groupID, actingUserID, targetUserID)
	return args.Error(0)
}
func (m *MockMembershipSvc) Demote(ctx context.Context, groupID int64, actingUserID, targetUserID string) error {
	args := m.Called(ctx, groupID, actingUserID, targetUserID)
	return args.Error(0)
}
func (m *MockMembershipSvc) Remove(ctx context.Context, groupID int64, actingUserID, targetUserID string) error {
	args := m.Called(ctx, groupID, actingUserID, targetUserID)
	return args.Error(0)
}
func (m *MockMembershipSvc) ListMembers(ctx context.Context, groupID int64, actingUserID string) ([]domain.Membership, error) {
	args := m.Called(ctx, groupID, actingUserID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipSvc) ListPendingRequests(ctx context.Context, groupID int64, actingUserID string) ([]domain.JoinRequest, error) {
	args := m.Called(ctx, groupID, actingUserID)
	return args.Get(0).([]domain.JoinRequest), args.Error(1)
}
func (m *MockMembershipSvc) RecountMembers(ctx context.Context, groupID int64) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}
