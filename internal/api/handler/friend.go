// internal/api/handler/friend.go
package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"fintrack/internal/api/types"
	"fintrack/internal/service"
	"fintrack/internal/util"

	"github.com/go-chi/chi/v5"
)

// FriendHandler handles friendships and the leaderboard.
type FriendHandler struct {
	base
	friends service.FriendService
}

// NewFriendHandler creates a new FriendHandler.
func NewFriendHandler(friends service.FriendService, logger *slog.Logger) *FriendHandler {
	return &FriendHandler{
		base:    newBase(logger),
		friends: friends,
	}
}

// AddFriend befriends the user registered under friendEmail.
// POST /leaderboard/new-friend/{friendEmail}
func (h *FriendHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	const op = "handler.friend.AddFriend"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	email, err := url.PathUnescape(chi.URLParam(r, "friendEmail"))
	if err != nil {
		h.respondWithError(w, r, op, util.Invalid("invalid friend email"))
		return
	}

	friend, err := h.friends.AddFriend(r.Context(), userID, email)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.log(r, op).Info("friend added", slog.Int64("user_id", userID), slog.Int64("friend_id", friend.ID))
	h.respondWithJSON(w, r, http.StatusCreated, types.AddFriendResponse{UserID: userID, Friend: friend})
}

// Count returns how many friends the acting user has.
// GET /leaderboard/count
func (h *FriendHandler) Count(w http.ResponseWriter, r *http.Request) {
	const op = "handler.friend.Count"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	count, err := h.friends.CountFriends(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, types.FriendsCountResponse{UserID: userID, FriendsCount: count})
}

// Friends lists the acting user's friends, highest score first.
// GET /leaderboard/friends
func (h *FriendHandler) Friends(w http.ResponseWriter, r *http.Request) {
	const op = "handler.friend.Friends"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	friends, err := h.friends.ListFriends(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, types.FriendsResponse{UserID: userID, Friends: friends})
}

// Rankings returns the leaderboard of the acting user and their friends.
// GET /leaderboard/rankings
func (h *FriendHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	const op = "handler.friend.Rankings"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	ranks, err := h.friends.Rankings(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, types.RankingsResponse{Ranks: ranks})
}
