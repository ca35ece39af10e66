// internal/api/handler/user.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/api/types"
	"fintrack/internal/domain"
	"fintrack/internal/service"
	"fintrack/internal/session"
	"fintrack/internal/util"

	"github.com/shopspring/decimal"
)

// UserHandler handles registration, login and user lookups.
type UserHandler struct {
	base
	users    service.UserService
	sessions session.Store
}

// NewUserHandler creates a new UserHandler. sessions may be nil, in which case
// login does not issue a cookie.
func NewUserHandler(users service.UserService, sessions session.Store, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		base:     newBase(logger),
		users:    users,
		sessions: sessions,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	FirstName       string          `json:"firstName" validate:"required,max=100"`
	LastName        string          `json:"lastName" validate:"required,max=100"`
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required"`
	ConfirmPassword string          `json:"confirmPassword"`
	Income          decimal.Decimal `json:"income"`
	Expenditures    decimal.Decimal `json:"expenditures"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ScoreRequest represents the request body for a score update.
type ScoreRequest struct {
	Score *int `json:"score" validate:"required,max=2147483647"`
}

// Register creates a user.
// POST /user/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handler.user.Register"

	var req RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	user, err := h.users.CreateUser(r.Context(), domain.Registration{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Income:          req.Income,
		Expenditures:    req.Expenditures,
	})
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.log(r, op).Info("user registered", slog.Int64("user_id", user.ID))
	h.respondWithJSON(w, r, http.StatusCreated, user)
}

// Login checks credentials and starts a session.
// POST /user/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handler.user.Login"

	var req LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) || util.IsError(err, util.ErrUnauthorized) {
			h.respondWithError(w, r, op, util.ErrInvalidCredentials)
			return
		}
		h.respondWithError(w, r, op, err)
		return
	}

	if h.sessions != nil {
		token, err := h.sessions.Create(r.Context(), user.ID)
		if err != nil {
			h.respondWithError(w, r, op, err)
			return
		}
		ttl := h.sessions.TTL()
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(ttl),
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	h.respondWithJSON(w, r, http.StatusOK, user)
}

// Logout ends the caller's session, if any.
// POST /user/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "handler.user.Logout"

	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" && h.sessions != nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.respondWithError(w, r, op, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.respondWithJSON(w, r, http.StatusOK, types.MessageResponse{Message: "logged out"})
}

// GetUser returns a user by id.
// GET /user/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	const op = "handler.user.GetUser"

	id, err := idParam(r, "id")
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}
	if user == nil {
		h.respondWithError(w, r, op, util.ErrUserNotFound)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, user)
}

// UpdateScore overwrites a user's score.
// PUT /user/{id}/score
func (h *UserHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	const op = "handler.user.UpdateScore"

	id, err := idParam(r, "id")
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	var req ScoreRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	user, err := h.users.UpdateScore(r.Context(), id, *req.Score)
	if err != nil {
		h.respondWithError(w, r, op, err)
		return
	}

	h.respondWithJSON(w, r, http.StatusOK, user)
}
