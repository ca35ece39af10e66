// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"fintrack/internal/api/handler"
	"fintrack/internal/api/middleware"
)

// Handlers groups the resource handlers mounted by NewRouter.
type Handlers struct {
	User      *handler.UserHandler
	Purchase  *handler.PurchaseHandler
	Goal      *handler.GoalHandler
	Friend    *handler.FriendHandler
	Dashboard *handler.DashboardHandler
}

// Options tunes the global middleware stack.
type Options struct {
	Sessions middleware.SessionLookup // Cookie fallback for identity; nil disables it
	Registry *prometheus.Registry     // Metrics registry; a fresh one is created when nil
	Limiter  *rate.Limiter            // Global rate limiter; nil disables it
	Timeout  time.Duration            // Per-request timeout; handler.DefaultTimeout when zero
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, opts Options, logger *slog.Logger) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = handler.DefaultTimeout
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
		opts.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	metrics := middleware.NewMetrics(opts.Registry)
	identity := middleware.Identity(opts.Sessions, logger)

	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(opts.Timeout))
	r.Use(metrics.Handler)
	r.Use(middleware.RateLimit(opts.Limiter, logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))

	r.Route("/user", func(r chi.Router) {
		r.Post("/register", h.User.Register)
		r.Post("/login", h.User.Login)
		r.Post("/logout", h.User.Logout)
		r.Get("/{id}", h.User.GetUser)
		r.Put("/{id}/score", h.User.UpdateScore)
	})

	r.Route("/purchase", func(r chi.Router) {
		r.With(identity).Post("/record", h.Purchase.Record)
		r.With(identity).Get("/my-purchases", h.Purchase.MyPurchases)
		r.Get("/admin/user/{userId}", h.Purchase.ListByUser)
		r.Get("/admin/{id}", h.Purchase.GetByID)
	})

	r.Route("/goals", func(r chi.Router) {
		r.Use(identity)
		r.Post("/new", h.Goal.Create)
		r.Get("/my-goals", h.Goal.MyGoal)
	})

	r.Route("/leaderboard", func(r chi.Router) {
		r.Use(identity)
		r.Post("/new-friend/{friendEmail}", h.Friend.AddFriend)
		r.Get("/count", h.Friend.Count)
		r.Get("/rankings", h.Friend.Rankings)
		r.Get("/friends", h.Friend.Friends)
	})

	r.Get("/dashboard/{userId}", h.Dashboard.Get)

	return r
}
