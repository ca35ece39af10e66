// internal/service/goal_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"
)

// GoalService defines the interface for goal-related business logic.
type GoalService interface {
	CreateGoal(ctx context.Context, actingUserID int64, goal *domain.Goal) (*domain.Goal, error)
	GetGoalByUser(ctx context.Context, userID int64) (*domain.Goal, error)
}

type goalService struct {
	dbExecutor repository.DBExecutor
	goalRepo   repository.GoalRepository
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(dbExecutor repository.DBExecutor, goalRepo repository.GoalRepository) GoalService {
	return &goalService{
		dbExecutor: dbExecutor,
		goalRepo:   goalRepo,
	}
}

// CreateGoal stores a goal owned by the acting user.
func (s *goalService) CreateGoal(ctx context.Context, actingUserID int64, goal *domain.Goal) (*domain.Goal, error) {
	if goal == nil {
		return nil, util.Invalid("goal is required")
	}
	if goal.Saved.IsNegative() {
		return nil, util.ErrNegativeAmount
	}
	if goal.Days < 0 {
		return nil, util.Invalid("days must not be negative")
	}
	if goal.Days > domain.MaxGoalDays {
		return nil, util.ErrGoalTooLong
	}

	goal.UserID = actingUserID
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now().UTC()
	}
	if err := s.goalRepo.CreateGoal(ctx, s.dbExecutor, goal); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

// GetGoalByUser returns the user's current goal, or nil when there is none.
func (s *goalService) GetGoalByUser(ctx context.Context, userID int64) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetGoalByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("get goal for user %d: %w", userID, err)
	}
	return goal, nil
}
