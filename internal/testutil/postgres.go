// internal/testutil/postgres.go
package testutil

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"fintrack/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MigrationsDir returns the absolute path of the repository's migrations directory.
func MigrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "cannot resolve caller path")
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// NewPostgres starts a throwaway PostgreSQL container, applies the migrations
// and returns a connection to it. The container is removed when the test ends.
// Tests calling it are skipped under -short.
func NewPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("fintrack_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := db.Open(dsn)
	require.NoError(t, err, "failed to connect to postgres container")
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.RunMigrations(conn.DB, MigrationsDir(t)))
	return conn
}

// Truncate empties the given tables and resets their identity sequences.
func Truncate(t *testing.T, conn *sqlx.DB, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := conn.Exec(`TRUNCATE TABLE ` + table + ` RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}
