// internal/api/types/response.go
package types

import "fintrack/internal/domain"

// ErrorResponse is the body of every JSON error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a short confirmation for endpoints with nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// MyPurchasesResponse lists the acting user's purchases, most recent first.
type MyPurchasesResponse struct {
	UserID        int64             `json:"userId"`
	PurchaseCount int               `json:"purchaseCount"`
	Purchases     []domain.Purchase `json:"purchases"`
}

type CreateGoalResponse struct {
	UserID int64        `json:"userId"`
	Goal   *domain.Goal `json:"goal"`
}

// MyGoalResponse wraps the current goal; Goal is null when the user has none.
type MyGoalResponse struct {
	Goal *domain.Goal `json:"goal"`
}

type AddFriendResponse struct {
	UserID int64        `json:"userId"`
	Friend *domain.User `json:"friend"`
}

type FriendsCountResponse struct {
	UserID       int64 `json:"userId"`
	FriendsCount int   `json:"friendsCount"`
}

type FriendsResponse struct {
	UserID  int64         `json:"userId"`
	Friends []domain.User `json:"friends"`
}

// RankingsResponse is the leaderboard of the acting user and their friends, highest score first.
type RankingsResponse struct {
	Ranks []domain.LeaderboardEntry `json:"ranks"`
}
