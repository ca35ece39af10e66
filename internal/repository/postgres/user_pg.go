// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"
)

const userColumns = `id, first_name, last_name, email, password, income, expenditures, score, created_at`

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
// Methods receive their DBExecutor per call, so the repository holds no state.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password, income, expenditures, score, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Income,
		user.Expenditures,
		user.Score,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if pgErrorCode(err) == codeUniqueViolation {
			return util.ErrDuplicateEmail
		}
		return util.StoreError("failed to create user", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.StoreError(fmt.Sprintf("failed to get user by ID %d", id), err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := q.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.StoreError(fmt.Sprintf("failed to get user by email '%s'", email), err)
	}
	return &user, nil
}

// UpdateUserScore overwrites the score of a user.
func (r *UserRepository) UpdateUserScore(ctx context.Context, q repository.DBExecutor, id int64, score int) error {
	result, err := q.ExecContext(ctx, `UPDATE users SET score = $1 WHERE id = $2`, score, id)
	if err != nil {
		return util.StoreError(fmt.Sprintf("failed to update score for user %d", id), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.StoreError(fmt.Sprintf("failed to get rows affected after updating score for user %d", id), err)
	}
	if rowsAffected == 0 {
		return util.ErrUserNotFound
	}
	return nil
}
