// internal/service/user_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	CreateUser(ctx context.Context, reg domain.Registration) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	UpdateScore(ctx context.Context, id int64, score int) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor // For queries outside a transaction (e.g., *sqlx.DB)
	userRepo   repository.UserRepository
	hash       func(password string) (string, error)
	compare    func(hash, password string) bool
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hash:       util.HashPassword,
		compare:    util.ComparePassword,
	}
}

// CreateUser registers a new user. The confirmation is only checked when the caller sent one.
func (s *userService) CreateUser(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	if reg.ConfirmPassword != "" && reg.ConfirmPassword != reg.Password {
		return nil, util.ErrPasswordMismatch
	}
	if reg.Income.IsNegative() || reg.Expenditures.IsNegative() {
		return nil, util.ErrNegativeAmount
	}
	reg.Email = strings.TrimSpace(reg.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("create user: failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, util.ErrDuplicateEmail
	}

	hash, err := s.hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := domain.NewUser(reg, hash)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// FindByEmail returns nil without an error when nobody uses the email.
func (s *userService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// GetUserByID returns nil without an error when the user does not exist.
func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// Authenticate checks an email/password pair.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	if !s.compare(user.PasswordHash, password) {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateScore overwrites a user's score and returns the updated user.
func (s *userService) UpdateScore(ctx context.Context, id int64, score int) (*domain.User, error) {
	if score < 0 {
		return nil, util.ErrNegativeScore
	}
	if score > domain.MaxScore {
		return nil, util.ErrScoreTooLarge
	}

	if err := s.userRepo.UpdateUserScore(ctx, s.dbExecutor, id, score); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update score: %w", err)
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}
