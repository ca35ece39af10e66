// internal/repository/purchase_repo.go
package repository

import (
	"context"

	"fintrack/internal/domain"
)

// PurchaseRepository defines the interface for purchase data operations.
type PurchaseRepository interface {
	// CreatePurchase inserts the purchase and fills in the store-assigned ID and purchase time.
	CreatePurchase(ctx context.Context, q DBExecutor, purchase *domain.Purchase) error
	// GetPurchaseByID returns nil and no error when the purchase does not exist.
	GetPurchaseByID(ctx context.Context, q DBExecutor, id int64) (*domain.Purchase, error)
	// GetPurchasesByUserID lists a user's purchases, most recent first.
	GetPurchasesByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Purchase, error)
}
