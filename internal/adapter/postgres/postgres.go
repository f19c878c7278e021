// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS entries (seq BIGSERIAL, date TEXT NOT NULL, user_id TEXT NOT NULL, sleep_hours TEXT NOT NULL DEFAULT '', mood TEXT NOT NULL DEFAULT '', stress TEXT NOT NULL DEFAULT '', activity_min TEXT NOT NULL DEFAULT '', notes TEXT NOT NULL DEFAULT '', PRIMARY KEY (user_id, date));",
		"CREATE INDEX IF NOT EXISTS idx_entries_seq ON entries(seq);",
		"CREATE TABLE IF NOT EXISTS credentials (seq BIGSERIAL, username TEXT PRIMARY KEY, password TEXT NOT NULL);",
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, username TEXT NOT NULL, expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var count int
	if err := d.sql.QueryRowContext(ctx, "SELECT COUNT(1) FROM credentials;").Scan(&count); err != nil {
		return fmt.Errorf("migrate: count credentials: %w", err)
	}
	if count == 0 {
		if err := seedCredentials(ctx, d.sql); err != nil {
			return fmt.Errorf("migrate: seed credentials: %w", err)
		}
	}
	return nil
}
