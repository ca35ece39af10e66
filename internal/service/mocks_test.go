// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserScore(ctx context.Context, q repository.DBExecutor, id int64, score int) error {
	args := m.Called(ctx, q, id, score)
	return args.Error(0)
}

// MockPurchaseRepository is a mock implementation of repository.PurchaseRepository.
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) CreatePurchase(ctx context.Context, q repository.DBExecutor, purchase *domain.Purchase) error {
	args := m.Called(ctx, q, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) GetPurchaseByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Purchase, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) GetPurchasesByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Purchase, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

// MockGoalRepository is a mock implementation of repository.GoalRepository.
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) CreateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.Goal) error {
	args := m.Called(ctx, q, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetGoalByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Goal, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

// MockFriendRepository is a mock implementation of repository.FriendRepository.
type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) AddFriendship(ctx context.Context, q repository.DBExecutor, userID, friendID int64) error {
	args := m.Called(ctx, q, userID, friendID)
	return args.Error(0)
}

func (m *MockFriendRepository) CountFriends(ctx context.Context, q repository.DBExecutor, userID int64) (int, error) {
	args := m.Called(ctx, q, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockFriendRepository) GetFriends(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.User, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController.
// It also implements repository.DBExecutor by embedding MockDBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// txFuncs returns begin/commit/rollback funcs that drive tx.
func txFuncs(tx *MockTxController) (db.BeginTxFunc, db.CommitTxFunc, db.RollbackTxFunc) {
	return func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return tx, nil
		},
		func(db.TxController) error {
			return tx.Commit()
		},
		func(db.TxController) {
			_ = tx.Rollback()
		}
}
