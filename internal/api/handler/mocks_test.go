// internal/api/handler/mocks_test.go
package handler

import (
	"context"
	"time"

	"fintrack/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateScore(ctx context.Context, id int64, score int) (*domain.User, error) {
	args := m.Called(ctx, id, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPurchaseService is a mock implementation of service.PurchaseService.
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) RecordPurchase(ctx context.Context, actingUserID int64, purchase *domain.Purchase) (*domain.Purchase, error) {
	args := m.Called(ctx, actingUserID, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseService) GetPurchaseByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseService) ListPurchasesByUser(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

// MockGoalService is a mock implementation of service.GoalService.
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) CreateGoal(ctx context.Context, actingUserID int64, goal *domain.Goal) (*domain.Goal, error) {
	args := m.Called(ctx, actingUserID, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) GetGoalByUser(ctx context.Context, userID int64) (*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

// MockFriendService is a mock implementation of service.FriendService.
type MockFriendService struct {
	mock.Mock
}

func (m *MockFriendService) AddFriend(ctx context.Context, currentUserID int64, friendEmail string) (*domain.User, error) {
	args := m.Called(ctx, currentUserID, friendEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockFriendService) CountFriends(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockFriendService) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockFriendService) Rankings(ctx context.Context, userID int64) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) BuildDashboard(ctx context.Context, userID int64) (*domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

// MockSessionStore is a mock implementation of session.Store.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Lookup(ctx context.Context, token string) (int64, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
