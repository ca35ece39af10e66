// internal/repository/postgres/purchase_pg.go
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

// PurchaseRepository implements repository.PurchaseRepository for PostgreSQL.
type PurchaseRepository struct{}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository() repository.PurchaseRepository {
	return &PurchaseRepository{}
}

// CreatePurchase inserts a purchase; the database assigns id and purchase_time.
func (r *PurchaseRepository) CreatePurchase(ctx context.Context, q repository.DBExecutor, purchase *domain.Purchase) error {
	query := `INSERT INTO purchases (user_id, amount, category, merchant)
              VALUES ($1, $2, $3, $4) RETURNING id, purchase_time`
	err := q.QueryRowContext(ctx, query,
		purchase.UserID,
		purchase.Amount,
		purchase.Category,
		purchase.Merchant,
	).Scan(&purchase.ID, &purchase.PurchaseTime)
	if err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return util.ErrUserNotFound
		}
		return util.StoreError("failed to create purchase", err)
	}
	return nil
}

// GetPurchaseByID retrieves a purchase by its ID.
func (r *PurchaseRepository) GetPurchaseByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Purchase, error) {
	var purchase domain.Purchase
	query := `SELECT id, user_id, amount, category, merchant, purchase_time FROM purchases WHERE id = $1`
	err := q.GetContext(ctx, &purchase, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.StoreError(fmt.Sprintf("failed to get purchase by ID %d", id), err)
	}
	return &purchase, nil
}

// GetPurchasesByUserID lists every purchase of a user, most recent first.
// Purchases recorded in the same instant fall back to insertion order.
func (r *PurchaseRepository) GetPurchasesByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Purchase, error) {
	purchases := []domain.Purchase{}
	query := `
		SELECT id, user_id, amount, category, merchant, purchase_time
		FROM purchases
		WHERE user_id = $1
		ORDER BY purchase_time DESC, id DESC`
	if err := q.SelectContext(ctx, &purchases, query, userID); err != nil {
		return nil, util.StoreError(fmt.Sprintf("failed to fetch purchases for user %d", userID), err)
	}
	return purchases, nil
}
