// internal/repository/postgres/goal_pg.go
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

// GoalRepository implements repository.GoalRepository for PostgreSQL.
type GoalRepository struct{}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository() repository.GoalRepository {
	return &GoalRepository{}
}

// CreateGoal inserts a goal and fills in its ID.
func (r *GoalRepository) CreateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.Goal) error {
	query := `INSERT INTO goals (user_id, title, saved, days, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, goal.UserID, goal.Title, goal.Saved, goal.Days, goal.CreatedAt).Scan(&goal.ID)
	if err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return util.ErrUserNotFound
		}
		return util.StoreError("failed to create goal", err)
	}
	return nil
}

// GetGoalByUserID returns the most recently created goal of a user.
func (r *GoalRepository) GetGoalByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Goal, error) {
	var goal domain.Goal
	query := `
		SELECT id, user_id, title, saved, days, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1`
	err := q.GetContext(ctx, &goal, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.StoreError(fmt.Sprintf("failed to get goal for user %d", userID), err)
	}
	return &goal, nil
}
