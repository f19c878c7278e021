package app

import (
	"context"
	"errors"
	"time"

	"wellness/internal/domain"
	"wellness/internal/sample"
)

// ErrNoUsers is returned when there is nobody to generate sample data for.
var ErrNoUsers = errors.New("no users found")

// SeedService regenerates demo history for every known user.
type SeedService struct {
	creds   domain.CredentialRepository
	entries domain.EntryRepository
	gen     *sample.Generator
}

// NewSeedService creates a SeedService drawing from gen.
func NewSeedService(creds domain.CredentialRepository, entries domain.EntryRepository, gen *sample.Generator) *SeedService {
	return &SeedService{creds: creds, entries: entries, gen: gen}
}

// Regenerate replaces the whole entry collection with synthetic history
// ending today and returns the number of rows written.
func (s *SeedService) Regenerate(ctx context.Context) (int, error) {
	list, err := s.creds.ListCredentials(ctx)
	if err != nil {
		return 0, err
	}
	var users []string
	for _, c := range list {
		if c.Username != "" {
			users = append(users, c.Username)
		}
	}
	if len(users) == 0 {
		return 0, ErrNoUsers
	}

	rows := s.gen.ForUsers(users, time.Now())
	if err := s.entries.ReplaceEntries(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
