// internal/domain/dashboard.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard is the read-only summary of a user's profile, latest purchase and current goal.
// Purchase and goal fields are nil (JSON null) when the user has none.
type Dashboard struct {
	UserID       int64           `json:"userId"`
	Income       decimal.Decimal `json:"income"`
	Expenditures decimal.Decimal `json:"expenditures"`
	Score        int             `json:"score"`

	// Latest purchase
	Amount       *decimal.Decimal `json:"amount"`
	Merchant     *string          `json:"merchant"`
	Category     *string          `json:"category"`
	PurchaseTime *time.Time       `json:"purchase_time"`

	// Current goal
	Title *string          `json:"title"`
	Days  *int64           `json:"days"`
	Saved *decimal.Decimal `json:"saved"`
}

// NewDashboard composes a Dashboard. latest and goal may be nil.
func NewDashboard(user *User, latest *Purchase, goal *Goal) *Dashboard {
	d := &Dashboard{
		UserID:       user.ID,
		Income:       user.Income,
		Expenditures: user.Expenditures,
		Score:        user.Score,
	}
	if latest != nil {
		amount, merchant, category, at := latest.Amount, latest.Merchant, latest.Category, latest.PurchaseTime
		d.Amount = &amount
		d.Merchant = &merchant
		d.Category = &category
		d.PurchaseTime = &at
	}
	if goal != nil {
		title, days, saved := goal.Title, goal.Days, goal.Saved
		d.Title = &title
		d.Days = &days
		d.Saved = &saved
	}
	return d
}
