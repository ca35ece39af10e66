// internal/service/dashboard_service.go
package service

import (
	"context"
	"fmt"

	"fintrack/internal/domain"
	"fintrack/internal/util"
)

// DashboardService aggregates a user's profile, latest purchase and goal.
type DashboardService interface {
	BuildDashboard(ctx context.Context, userID int64) (*domain.Dashboard, error)
}

type dashboardService struct {
	users     UserService
	purchases PurchaseService
	goals     GoalService
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(users UserService, purchases PurchaseService, goals GoalService) DashboardService {
	return &dashboardService{
		users:     users,
		purchases: purchases,
		goals:     goals,
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, userID int64) (*domain.Dashboard, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	purchases, err := s.purchases.ListPurchasesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	var latest *domain.Purchase
	if len(purchases) > 0 {
		latest = &purchases[0]
	}

	goal, err := s.goals.GetGoalByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return domain.NewDashboard(user, latest, goal), nil
}
