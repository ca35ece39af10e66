// internal/repository/user_repo.go
package repository

import (
	"context"

	"fintrack/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser inserts the user and fills in its ID.
	// Returns util.ErrDuplicateEmail if the email is already taken.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID returns nil and no error when no user has the ID.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByEmail returns nil and no error when no user has the email.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// UpdateUserScore overwrites the score. Returns util.ErrUserNotFound if no row was updated.
	UpdateUserScore(ctx context.Context, q DBExecutor, id int64, score int) error
}
