// internal/service/purchase_service.go
package service

import (
	"context"
	"fmt"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"
)

// PurchaseService defines the interface for purchase-related business logic.
type PurchaseService interface {
	RecordPurchase(ctx context.Context, actingUserID int64, purchase *domain.Purchase) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, id int64) (*domain.Purchase, error)
	ListPurchasesByUser(ctx context.Context, userID int64) ([]domain.Purchase, error)
}

type purchaseService struct {
	dbExecutor   repository.DBExecutor
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseService creates a new instance of PurchaseService.
func NewPurchaseService(dbExecutor repository.DBExecutor, purchaseRepo repository.PurchaseRepository) PurchaseService {
	return &purchaseService{
		dbExecutor:   dbExecutor,
		purchaseRepo: purchaseRepo,
	}
}

// RecordPurchase stores a purchase for the acting user. Any user id carried by
// the purchase itself is overwritten.
func (s *purchaseService) RecordPurchase(ctx context.Context, actingUserID int64, purchase *domain.Purchase) (*domain.Purchase, error) {
	if purchase == nil {
		return nil, util.Invalid("purchase is required")
	}
	if purchase.Amount.IsNegative() {
		return nil, util.ErrNegativeAmount
	}

	purchase.UserID = actingUserID
	if err := s.purchaseRepo.CreatePurchase(ctx, s.dbExecutor, purchase); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("record purchase: %w", err)
	}
	return purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.GetPurchaseByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase %d: %w", id, err)
	}
	return purchase, nil
}

// ListPurchasesByUser returns the user's purchases, most recent first. The
// result is never nil.
func (s *purchaseService) ListPurchasesByUser(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.GetPurchasesByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	if purchases == nil {
		purchases = []domain.Purchase{}
	}
	return purchases, nil
}
