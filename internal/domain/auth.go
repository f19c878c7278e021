package domain

import (
	"context"
	"time"
)

// Credential is a stored username/password pair. Passwords are plaintext.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// DefaultCredentials seed an empty credential store.
var DefaultCredentials = []Credential{
	{Username: "user1", Password: "demo"},
	{Username: "demo", Password: "demo"},
}

// Session represents an active user session.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CredentialRepository defines the port for credential persistence operations.
type CredentialRepository interface {
	ListCredentials(ctx context.Context) ([]Credential, error)
	AddCredential(ctx context.Context, c Credential) error
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, username, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
