// Package sqlite implements the domain repositories on an embedded SQLite
// database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"wellness/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

var _ domain.EntryRepository = (*DB)(nil)
var _ domain.CredentialRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// Open creates the database file if needed and runs migrations.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: create directory: %w", err)
	}
	s, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// A single connection serializes writers on the file.
	s.SetMaxOpenConns(1)

	d := &DB{sql: s}
	if err := d.migrate(context.Background()); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"CREATE TABLE IF NOT EXISTS entries (date TEXT NOT NULL, user_id TEXT NOT NULL, sleep_hours TEXT NOT NULL DEFAULT '', mood TEXT NOT NULL DEFAULT '', stress TEXT NOT NULL DEFAULT '', activity_min TEXT NOT NULL DEFAULT '', notes TEXT NOT NULL DEFAULT '', UNIQUE (user_id, date));",
		"CREATE TABLE IF NOT EXISTS credentials (username TEXT NOT NULL UNIQUE, password TEXT NOT NULL);",
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, username TEXT NOT NULL, expires_at INTEGER NOT NULL, created_at INTEGER NOT NULL);",
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
		for _, c := range domain.DefaultCredentials {
			if err := d.AddCredential(ctx, c); err != nil {
				return fmt.Errorf("migrate: seed credentials: %w", err)
			}
		}
	}
	return nil
}

// --- EntryRepository ---

// ListEntries returns all entries in insertion order.
func (d *DB) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT date, user_id, sleep_hours, mood, stress, activity_min, notes FROM entries ORDER BY rowid;",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Date, &e.UserID, &e.SleepHours, &e.Mood, &e.Stress, &e.ActivityMin, &e.Notes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpsertEntry inserts e or overwrites the row with the same (user_id, date).
func (d *DB) UpsertEntry(ctx context.Context, e domain.Entry) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO entries(date, user_id, sleep_hours, mood, stress, activity_min, notes)
		 VALUES(?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   sleep_hours = excluded.sleep_hours,
		   mood = excluded.mood,
		   stress = excluded.stress,
		   activity_min = excluded.activity_min,
		   notes = excluded.notes;`,
		e.Date, e.UserID, e.SleepHours, e.Mood, e.Stress, e.ActivityMin, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upsert entry: %w", err)
	}
	return nil
}

// ReplaceEntries swaps the collection inside one transaction.
func (d *DB) ReplaceEntries(ctx context.Context, entries []domain.Entry) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries;"); err != nil {
		return fmt.Errorf("sqlite: clear entries: %w", err)
	}
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO entries(date, user_id, sleep_hours, mood, stress, activity_min, notes) VALUES(?, ?, ?, ?, ?, ?, ?);",
			e.Date, e.UserID, e.SleepHours, e.Mood, e.Stress, e.ActivityMin, e.Notes,
		); err != nil {
			return fmt.Errorf("sqlite: insert entry: %w", err)
		}
	}
	return tx.Commit()
}

// --- CredentialRepository ---

// ListCredentials returns all credentials in creation order.
func (d *DB) ListCredentials(ctx context.Context) ([]domain.Credential, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT username, password FROM credentials ORDER BY rowid;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Credential
	for rows.Next() {
		var c domain.Credential
		if err := rows.Scan(&c.Username, &c.Password); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddCredential creates a new credential.
func (d *DB) AddCredential(ctx context.Context, c domain.Credential) error {
	_, err := d.sql.ExecContext(ctx, "INSERT INTO credentials(username, password) VALUES(?, ?);", c.Username, c.Password)
	return err
}

// --- SessionRepository ---

// SessionRepo stores sessions in the same database file.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions(token, username, expires_at, created_at) VALUES(?, ?, ?, ?);",
		token, username, expiresAt.Unix(), time.Now().Unix(),
	)
	return err
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var (
		s                  domain.Session
		expires, createdAt int64
	)
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, username, expires_at, created_at FROM sessions WHERE token = ?;",
		token,
	).Scan(&s.Token, &s.Username, &expires, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.ExpiresAt = time.Unix(expires, 0)
	s.CreatedAt = time.Unix(createdAt, 0)
	return &s, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?;", token)
	return err
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?;", time.Now().Unix())
	return err
}
