// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"wellness/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	entries     []domain.Entry
	credentials []domain.Credential
	sessions    map[string]*domain.Session
}

// New creates a new in-memory database seeded with the demo accounts.
func New() *DB {
	return &DB{
		credentials: append([]domain.Credential(nil), domain.DefaultCredentials...),
		sessions:    make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.EntryRepository = (*DB)(nil)
var _ domain.CredentialRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- EntryRepository ---

// ListEntries returns a copy of all entries in insertion order.
func (db *DB) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Entry, len(db.entries))
	copy(result, db.entries)
	return result, nil
}

// UpsertEntry overwrites the entry with the same key or appends e.
func (db *DB) UpsertEntry(ctx context.Context, e domain.Entry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].SameKey(e) {
			db.entries[i].Overwrite(e)
			return nil
		}
	}
	db.entries = append(db.entries, e)
	return nil
}

// ReplaceEntries swaps the whole collection.
func (db *DB) ReplaceEntries(ctx context.Context, entries []domain.Entry) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.entries = append([]domain.Entry(nil), entries...)
	return nil
}

// --- CredentialRepository ---

// ListCredentials returns all credentials.
func (db *DB) ListCredentials(ctx context.Context) ([]domain.Credential, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Credential, len(db.credentials))
	copy(result, db.credentials)
	return result, nil
}

// AddCredential appends a credential. Uniqueness is checked by the caller.
func (db *DB) AddCredential(ctx context.Context, c domain.Credential) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.credentials = append(db.credentials, c)
	return nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
