// internal/api/handler/goal.go
package handler

import (
	"log/slog"
	"net/http"

	"fintrack/internal/api/types"
	"fintrack/internal/domain"
	"fintrack/internal/service"

	"github.com/shopspring/decimal"
)

// GoalHandler handles HTTP requests related to savings goals.
type GoalHandler struct {
	base
	goals service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goals service.GoalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		base:  newBase(logger),
		goals: goals,
	}
}

// GoalRequest represents the request body for a new goal.
type GoalRequest struct {
	Title string          `json:"title" validate:"required,max=200"`
	Saved decimal.Decimal `json:"saved"`
	Days  int64           `json:"days" validate:"min=0,max=36500"`
}

// Create stores a goal for the acting user.
// POST /goals/new
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handler.goal.Create"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	var req GoalRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	goal, err := h.goals.CreateGoal(r.Context(), userID, domain.NewGoal(userID, req.Title, req.Saved, req.Days))
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusCreated, types.CreateGoalResponse{UserID: userID, Goal: goal})
}

// MyGoal returns the acting user's current goal, or null.
// GET /goals/my-goals
func (h *GoalHandler) MyGoal(w http.ResponseWriter, r *http.Request) {
	const op = "handler.goal.MyGoal"

	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	goal, err := h.goals.GetGoalByUser(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, types.MyGoalResponse{Goal: goal})
}
