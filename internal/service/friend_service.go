// internal/service/friend_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"
	"fintrack/pkg/db"
)

// FriendService defines the interface for friendships and the friend leaderboard.
type FriendService interface {
	AddFriend(ctx context.Context, currentUserID int64, friendEmail string) (*domain.User, error)
	CountFriends(ctx context.Context, userID int64) (int, error)
	ListFriends(ctx context.Context, userID int64) ([]domain.User, error)
	Rankings(ctx context.Context, userID int64) ([]domain.LeaderboardEntry, error)
}

// friendService implements the FriendService interface.
type friendService struct {
	dbBeginner db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewFriendService creates a new instance of FriendService.
func NewFriendService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	friendRepo repository.FriendRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) FriendService {
	return &friendService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		friendRepo: friendRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// AddFriend makes the user with friendEmail a friend of currentUserID. Both
// directions of the relation are written in one transaction.
func (s *friendService) AddFriend(ctx context.Context, currentUserID int64, friendEmail string) (*domain.User, error) {
	friendEmail = strings.TrimSpace(friendEmail)
	if friendEmail == "" {
		return nil, util.Invalid("friend email is required")
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("add friend: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("add friend: transaction controller does not implement DBExecutor")
	}

	friend, err := s.userRepo.GetUserByEmail(ctx, txExecutor, friendEmail)
	if err != nil {
		return nil, fmt.Errorf("add friend: failed to look up '%s': %w", friendEmail, err)
	}
	if friend == nil {
		return nil, util.ErrUserNotFound
	}
	if friend.ID == currentUserID {
		return nil, util.ErrSelfFriend
	}

	if err := s.friendRepo.AddFriendship(ctx, txExecutor, currentUserID, friend.ID); err != nil {
		if util.IsError(err, util.ErrInvalidInput) || util.IsError(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("add friend: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("add friend: failed to commit transaction: %w", err)
	}

	return friend, nil
}

// CountFriends returns 0 for a user without friends.
func (s *friendService) CountFriends(ctx context.Context, userID int64) (int, error) {
	count, err := s.friendRepo.CountFriends(ctx, s.dbExecutor, userID)
	if err != nil {
		return 0, fmt.Errorf("count friends: %w", err)
	}
	return count, nil
}

func (s *friendService) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	friends, err := s.friendRepo.GetFriends(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	if friends == nil {
		friends = []domain.User{}
	}
	return friends, nil
}

// Rankings builds the leaderboard of userID and their friends.
func (s *friendService) Rankings(ctx context.Context, userID int64) ([]domain.LeaderboardEntry, error) {
	self, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("rankings: failed to get user %d: %w", userID, err)
	}
	if self == nil {
		return nil, util.ErrUserNotFound
	}

	friends, err := s.ListFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("rankings: %w", err)
	}

	return domain.BuildLeaderboard(*self, friends), nil
}
