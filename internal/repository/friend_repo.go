// internal/repository/friend_repo.go
package repository

import (
	"context"

	"fintrack/internal/domain"
)

// FriendRepository defines the interface for friendship data operations.
// A friendship is stored as two directed rows.
type FriendRepository interface {
	// AddFriendship inserts both directions of the relation. Callers should pass a
	// transaction executor so the pair is written atomically.
	// Returns util.ErrAlreadyFriends if the relation already exists.
	AddFriendship(ctx context.Context, q DBExecutor, userID, friendID int64) error
	// CountFriends returns 0 for a user without friends.
	CountFriends(ctx context.Context, q DBExecutor, userID int64) (int, error)
	// GetFriends lists the users related to userID, highest score first.
	GetFriends(ctx context.Context, q DBExecutor, userID int64) ([]domain.User, error)
}
