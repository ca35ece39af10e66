// internal/session/store.go
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie that carries the session token.
const CookieName = "fintrack_session"

// ErrEmptyToken is returned when a lookup or delete is attempted without a token.
var ErrEmptyToken = errors.New("session token is empty")

// Store keeps login sessions, mapping an opaque token to a user id.
type Store interface {
	// Create starts a session for userID and returns its token.
	Create(ctx context.Context, userID int64) (string, error)
	// Lookup returns the user of a live session. found is false for unknown or expired tokens.
	Lookup(ctx context.Context, token string) (userID int64, found bool, err error)
	// Delete ends a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
	// TTL is how long a new session lives.
	TTL() time.Duration
}

func newToken() string {
	return uuid.NewString()
}
