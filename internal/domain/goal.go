// internal/domain/goal.go
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// MaxGoalDays caps a goal's length so its end date stays a representable calendar date.
const MaxGoalDays = 36500

// Goal represents a savings goal.
type Goal struct {
	ID        int64           `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"userId"`
	Title     string          `db:"title" json:"title"`
	Saved     decimal.Decimal `db:"saved" json:"saved"` // Amount saved so far, updated outside this service
	Days      int64           `db:"days" json:"days"`   // Length of the goal in days, counted from CreatedAt
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// NewGoal creates a new Goal owned by userID.
func NewGoal(userID int64, title string, saved decimal.Decimal, days int64) *Goal {
	return &Goal{
		UserID:    userID,
		Title:     title,
		Saved:     saved,
		Days:      days,
		CreatedAt: time.Now().UTC(),
	}
}

// EndDate is the day the goal runs out.
func (g Goal) EndDate() time.Time {
	return g.CreatedAt.AddDate(0, 0, int(g.Days))
}

// MarshalJSON adds the derived endDate to the encoded goal.
func (g Goal) MarshalJSON() ([]byte, error) {
	type goalAlias Goal
	return json.Marshal(struct {
		goalAlias
		EndDate time.Time `json:"endDate"`
	}{
		goalAlias: goalAlias(g),
		EndDate:   g.EndDate(),
	})
}
