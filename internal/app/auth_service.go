// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"wellness/internal/domain"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrCredentialsRequired rejects a signup with an empty username or password.
	ErrCredentialsRequired = errors.New("username and password required")
	// ErrPasswordMismatch rejects a signup whose confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrUsernameTaken rejects a signup for a username already present.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// SessionTTL is how long a login session stays valid.
const SessionTTL = 24 * time.Hour

// AuthService handles authentication, signup and session management.
type AuthService struct {
	creds    domain.CredentialRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(creds domain.CredentialRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		creds:    creds,
		sessions: sessions,
	}
}

// Authenticate returns the trimmed username when an exact username/password
// row exists. Only the username is trimmed; the password must match as typed.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	list, err := s.creds.ListCredentials(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range list {
		if c.Username == username && c.Password == password {
			return username, nil
		}
	}
	return "", ErrInvalidCredentials
}

// Signup validates and stores a new credential, returning the new username.
// Rejections are one of ErrCredentialsRequired, ErrPasswordMismatch or
// ErrUsernameTaken and leave the store unchanged.
func (s *AuthService) Signup(ctx context.Context, username, password, confirm string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrCredentialsRequired
	}
	if password != confirm {
		return "", ErrPasswordMismatch
	}
	list, err := s.creds.ListCredentials(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range list {
		if c.Username == username {
			return "", ErrUsernameTaken
		}
	}
	if err := s.creds.AddCredential(ctx, domain.Credential{Username: username, Password: password}); err != nil {
		return "", err
	}
	return username, nil
}

// IsRejection reports whether err is a signup or login rejection rather than
// a storage failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrCredentialsRequired) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrUsernameTaken)
}

// Login authenticates a user and creates a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", "", err
	}
	token, err := s.startSession(ctx, user)
	return token, user, err
}

// SignupAndLogin creates the account and starts a session for it.
func (s *AuthService) SignupAndLogin(ctx context.Context, username, password, confirm string) (string, string, error) {
	user, err := s.Signup(ctx, username, password, confirm)
	if err != nil {
		return "", "", err
	}
	token, err := s.startSession(ctx, user)
	return token, user, err
}

// LoginWithUser creates a session for an identity already verified elsewhere
// (e.g. via SSO). No credential row is created for it.
func (s *AuthService) LoginWithUser(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrInvalidCredentials
	}
	return s.startSession(ctx, username)
}

// ValidateForwardAuth accepts the identity asserted by a trusted forward-auth
// proxy through the Remote-User header.
func (s *AuthService) ValidateForwardAuth(_ context.Context, remoteUser string) (string, error) {
	remoteUser = strings.TrimSpace(remoteUser)
	if remoteUser == "" {
		return "", errors.New("no remote user header")
	}
	return remoteUser, nil
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a session token to its username.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return "", ErrSessionExpired
	}
	return session.Username, nil
}

// PruneSessions removes expired sessions.
func (s *AuthService) PruneSessions(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx)
}

// Usernames lists every known username in store order.
func (s *AuthService) Usernames(ctx context.Context) ([]string, error) {
	list, err := s.creds.ListCredentials(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(list))
	for _, c := range list {
		if c.Username != "" {
			out = append(out, c.Username)
		}
	}
	return out, nil
}

func (s *AuthService) startSession(ctx context.Context, username string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, username, token, time.Now().Add(SessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
