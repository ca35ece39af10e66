// internal/domain/purchase.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase represents a single recorded purchase. Purchases are immutable once stored.
type Purchase struct {
	ID           int64           `db:"id" json:"id"`                      // Primary key, BIGSERIAL in DB
	UserID       int64           `db:"user_id" json:"userId"`             // Owner; always the acting user
	Amount       decimal.Decimal `db:"amount" json:"amount"`              // NUMERIC(20, 4) in DB, never negative
	Category     string          `db:"category" json:"category"`          // e.g. "groceries"
	Merchant     string          `db:"merchant" json:"merchant"`          // Where the purchase was made
	PurchaseTime time.Time       `db:"purchase_time" json:"purchaseTime"` // Assigned by the store on insert
}

// NewPurchase creates a Purchase owned by userID. The purchase time is left
// zero so the store can assign it.
func NewPurchase(userID int64, amount decimal.Decimal, category, merchant string) *Purchase {
	return &Purchase{
		UserID:   userID,
		Amount:   amount,
		Category: category,
		Merchant: merchant,
	}
}
