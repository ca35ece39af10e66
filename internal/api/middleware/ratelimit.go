// internal/api/middleware/ratelimit.go
package middleware

import (
	"log/slog"
	"net/http"

	"fintrack/internal/api/types"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once limiter runs out of tokens.
// A nil limiter disables limiting.
func RateLimit(limiter *rate.Limiter, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests",
					slog.String("request_id", chimw.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, types.ErrorResponse{Error: "too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLimiter builds a limiter allowing rps requests per second with the given
// burst. A non-positive rps returns nil, which disables limiting.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
