package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wellness/internal/domain"
)

var _ domain.CredentialRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func seedCredentials(ctx context.Context, db execer) error {
	for _, c := range domain.DefaultCredentials {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO credentials (username, password) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			c.Username, c.Password,
		); err != nil {
			return err
		}
	}
	return nil
}

// ListCredentials returns all credentials in creation order.
func (d *DB) ListCredentials(ctx context.Context) ([]domain.Credential, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT username, password FROM credentials ORDER BY seq")
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
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO credentials (username, password) VALUES ($1, $2)",
		c.Username, c.Password,
	)
	return err
}

// SessionRepo implements session repository operations on DB.
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
		"INSERT INTO sessions (username, token, expires_at, created_at) VALUES ($1, $2, $3, $4)",
		username, token, expiresAt, time.Now(),
	)
	return err
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, username, expires_at, created_at FROM sessions WHERE token = $1",
		token,
	).Scan(&s.Token, &s.Username, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	return err
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < $1", time.Now())
	return err
}
