// internal/session/postgres_store.go
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps sessions in the sessions table.
type PostgresStore struct {
	db  *sqlx.DB
	ttl time.Duration
	now func() time.Time
}

// NewPostgresStore creates a PostgresStore whose sessions live for ttl.
func NewPostgresStore(db *sqlx.DB, ttl time.Duration) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl, now: time.Now}
}

func (s *PostgresStore) TTL() time.Duration { return s.ttl }

func (s *PostgresStore) Create(ctx context.Context, userID int64) (string, error) {
	const op = "session.PostgresStore.Create"
	token := newToken()
	expiresAt := s.now().UTC().Add(s.ttl)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

func (s *PostgresStore) Lookup(ctx context.Context, token string) (int64, bool, error) {
	const op = "session.PostgresStore.Lookup"
	if token == "" {
		return 0, false, ErrEmptyToken
	}

	var userID int64
	err := s.db.GetContext(ctx, &userID,
		`SELECT user_id FROM sessions WHERE token = $1 AND expires_at > $2`,
		token, s.now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}
	return userID, true, nil
}

func (s *PostgresStore) Delete(ctx context.Context, token string) error {
	const op = "session.PostgresStore.Delete"
	if token == "" {
		return ErrEmptyToken
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PurgeExpired removes sessions that have run out and returns how many were deleted.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	const op = "session.PostgresStore.PurgeExpired"
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
