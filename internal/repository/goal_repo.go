// internal/repository/goal_repo.go
package repository

import (
	"context"

	"fintrack/internal/domain"
)

// GoalRepository defines the interface for goal data operations.
type GoalRepository interface {
	CreateGoal(ctx context.Context, q DBExecutor, goal *domain.Goal) error
	// GetGoalByUserID returns the user's most recent goal, or nil when there is none.
	GetGoalByUserID(ctx context.Context, q DBExecutor, userID int64) (*domain.Goal, error)
}
