// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	router "fintrack/internal/api"
	"fintrack/internal/api/handler"
	"fintrack/internal/api/middleware"
	"fintrack/internal/config"
	"fintrack/internal/repository"
	"fintrack/internal/repository/postgres"
	"fintrack/internal/service"
	"fintrack/internal/session"
	"fintrack/internal/util"
	"fintrack/pkg/db"
)

// sessionPurgeInterval is how often expired Postgres sessions are deleted.
const sessionPurgeInterval = time.Hour

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client // Only set with the redis session backend

	// Repositories
	UserRepository     repository.UserRepository
	PurchaseRepository repository.PurchaseRepository
	GoalRepository     repository.GoalRepository
	FriendRepository   repository.FriendRepository

	// Services
	UserService      service.UserService
	PurchaseService  service.PurchaseService
	GoalService      service.GoalService
	FriendService    service.FriendService
	DashboardService service.DashboardService

	Sessions session.Store
	Registry *prometheus.Registry

	// HTTP API
	HTTPHandler http.Handler

	stopBackground context.CancelFunc
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is used by callers on failure, so make sure one exists.
		app.Logger = util.GetLogger()
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and migrate
	database, err := db.NewPostgresDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if cfg.MigrationsPath != "" {
		if err := db.RunMigrations(app.DB.DB, cfg.MigrationsPath); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Logger.Info("Database migrations applied.", slog.String("path", cfg.MigrationsPath))
	}

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository()
	app.PurchaseRepository = postgres.NewPurchaseRepository()
	app.GoalRepository = postgres.NewGoalRepository()
	app.FriendRepository = postgres.NewFriendRepository()
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.UserService = service.NewUserService(app.DB, app.UserRepository)
	app.PurchaseService = service.NewPurchaseService(app.DB, app.PurchaseRepository)
	app.GoalService = service.NewGoalService(app.DB, app.GoalRepository)
	app.FriendService = service.NewFriendService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.FriendRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.DashboardService = service.NewDashboardService(app.UserService, app.PurchaseService, app.GoalService)
	app.Logger.Info("Services initialized.")

	// 6. Initialize Session Store
	bgCtx, stop := context.WithCancel(context.Background())
	app.stopBackground = stop
	if err := app.initSessions(ctx, bgCtx); err != nil {
		return err
	}

	// 7. Initialize HTTP Handlers and Router
	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(app.DB.DB, cfg.DB.DBName),
	)

	app.HTTPHandler = router.NewRouter(router.Handlers{
		User:      handler.NewUserHandler(app.UserService, app.Sessions, app.Logger),
		Purchase:  handler.NewPurchaseHandler(app.PurchaseService, app.Logger),
		Goal:      handler.NewGoalHandler(app.GoalService, app.Logger),
		Friend:    handler.NewFriendHandler(app.FriendService, app.Logger),
		Dashboard: handler.NewDashboardHandler(app.DashboardService, app.Logger),
	}, router.Options{
		Sessions: app.Sessions,
		Registry: app.Registry,
		Limiter:  middleware.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		Timeout:  cfg.RequestTimeout,
	}, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

func (app *Application) initSessions(ctx, bgCtx context.Context) error {
	switch app.Config.Session.Backend {
	case config.SessionBackendRedis:
		client, err := session.NewRedisClient(ctx, app.Config.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.Redis = client
		app.Sessions = session.NewRedisStore(client, app.Config.Session.TTL)
	default:
		store := session.NewPostgresStore(app.DB, app.Config.Session.TTL)
		app.Sessions = store
		go app.purgeSessions(bgCtx, store)
	}
	app.Logger.Info("Session store initialized.", slog.String("backend", app.Config.Session.Backend))
	return nil
}

// purgeSessions deletes expired sessions until ctx is cancelled.
func (app *Application) purgeSessions(ctx context.Context, store *session.PostgresStore) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				app.Logger.Error("Failed to purge expired sessions", util.Err(err))
				continue
			}
			if n > 0 {
				app.Logger.Info("Expired sessions purged.", slog.Int64("count", n))
			}
		}
	}
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.stopBackground != nil {
		app.stopBackground()
	}
	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			app.Logger.Error("Failed to close redis connection", util.Err(err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", util.Err(err))
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
