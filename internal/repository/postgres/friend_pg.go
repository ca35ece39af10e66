// internal/repository/postgres/friend_pg.go
package postgres

import (
	"context"
	"fmt"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"
)

// FriendRepository implements repository.FriendRepository for PostgreSQL.
type FriendRepository struct{}

// NewFriendRepository creates a new FriendRepository.
func NewFriendRepository() repository.FriendRepository {
	return &FriendRepository{}
}

// AddFriendship inserts (userID, friendID) and (friendID, userID).
func (r *FriendRepository) AddFriendship(ctx context.Context, q repository.DBExecutor, userID, friendID int64) error {
	if userID == friendID {
		return util.ErrSelfFriend
	}

	query := `INSERT INTO friends (user_id, friend_id) VALUES ($1, $2), ($2, $1)
              ON CONFLICT (user_id, friend_id) DO NOTHING`
	result, err := q.ExecContext(ctx, query, userID, friendID)
	if err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return util.ErrUserNotFound
		}
		return util.StoreError(fmt.Sprintf("failed to add friendship %d<->%d", userID, friendID), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.StoreError("failed to get rows affected after adding friendship", err)
	}
	if rowsAffected == 0 {
		return util.ErrAlreadyFriends
	}
	return nil
}

// CountFriends counts the relation rows owned by userID.
func (r *FriendRepository) CountFriends(ctx context.Context, q repository.DBExecutor, userID int64) (int, error) {
	var count int
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM friends WHERE user_id = $1`, userID); err != nil {
		return 0, util.StoreError(fmt.Sprintf("failed to count friends for user %d", userID), err)
	}
	return count, nil
}

// GetFriends lists the friends of userID ordered by score, highest first.
func (r *FriendRepository) GetFriends(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.User, error) {
	friends := []domain.User{}
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password, u.income, u.expenditures, u.score, u.created_at
		FROM friends f
		JOIN users u ON f.friend_id = u.id
		WHERE f.user_id = $1
		ORDER BY u.score DESC, u.id`
	if err := q.SelectContext(ctx, &friends, query, userID); err != nil {
		return nil, util.StoreError(fmt.Sprintf("failed to fetch friends for user %d", userID), err)
	}
	return friends, nil
}
