// internal/api/middleware/identity.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"fintrack/internal/api/types"
	"fintrack/internal/session"
	"fintrack/internal/util"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// UserIDHeader carries the acting user's id on authenticated routes.
const UserIDHeader = "X-User-Id"

// MissingIdentityMessage is the plain-text body sent when no acting user can be resolved.
const MissingIdentityMessage = "Missing or invalid X-User-Id."

type ctxKey string

const userIDKey ctxKey = "userID"

// SessionLookup resolves a session token to a user id.
type SessionLookup interface {
	Lookup(ctx context.Context, token string) (userID int64, found bool, err error)
}

// WithUserID returns a copy of ctx carrying the acting user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the acting user id stored by Identity.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

var errNoIdentity = errors.New("no identity on request")

// Identity resolves the acting user from the X-User-Id header, or from the
// session cookie when the header is absent. Requests without a usable
// identity get 401.
func Identity(sessions SessionLookup, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.Identity"

			userID, err := resolveUserID(r, sessions)
			if err != nil {
				if util.IsError(err, util.ErrStore) {
					log.Error("session lookup failed",
						slog.String("op", op),
						slog.String("request_id", chimw.GetReqID(r.Context())),
						util.Err(err),
					)
					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, types.ErrorResponse{Error: "internal server error"})
					return
				}
				render.Status(r, http.StatusUnauthorized)
				render.PlainText(w, r, MissingIdentityMessage)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func resolveUserID(r *http.Request, sessions SessionLookup) (int64, error) {
	if raw, present := r.Header[http.CanonicalHeaderKey(UserIDHeader)]; present {
		return parseUserID(strings.Join(raw, ""))
	}

	if sessions == nil {
		return 0, errNoIdentity
	}
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return 0, errNoIdentity
	}

	userID, found, err := sessions.Lookup(r.Context(), cookie.Value)
	if err != nil {
		return 0, util.StoreError("session lookup", err)
	}
	if !found {
		return 0, errNoIdentity
	}
	return userID, nil
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errNoIdentity
	}
	return id, nil
}
