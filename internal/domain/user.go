// internal/domain/user.go
package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MaxScore is the largest score the users.score INTEGER column holds.
const MaxScore = math.MaxInt32

// User represents a registered user.
type User struct {
	ID           int64           `db:"id" json:"id"`                     // Primary key, BIGSERIAL in DB
	FirstName    string          `db:"first_name" json:"firstName"`      // Given name
	LastName     string          `db:"last_name" json:"lastName"`        // Family name
	Email        string          `db:"email" json:"email"`               // Unique login identifier
	PasswordHash string          `db:"password" json:"-"`                // bcrypt hash, never serialized
	Income       decimal.Decimal `db:"income" json:"income"`             // Monthly income, NUMERIC(20, 4) in DB
	Expenditures decimal.Decimal `db:"expenditures" json:"expenditures"` // Monthly expenditures, NUMERIC(20, 4) in DB
	Score        int             `db:"score" json:"score"`               // Maintained by the external scoring process
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`      // Timestamp of registration
}

// Registration carries the fields submitted when a user signs up.
type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string // Optional; checked against Password only when set
	Income          decimal.Decimal
	Expenditures    decimal.Decimal
}

// NewUser creates a new User from a registration and an already hashed password.
func NewUser(reg Registration, passwordHash string) *User {
	return &User{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: passwordHash,
		Income:       reg.Income,
		Expenditures: reg.Expenditures,
		CreatedAt:    time.Now().UTC(),
	}
}
