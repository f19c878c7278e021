package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"wellness/internal/adapter/csvfile"
	"wellness/internal/adapter/memory"
	"wellness/internal/adapter/postgres"
	"wellness/internal/adapter/sqlite"
	"wellness/internal/domain"
)

// Default file names inside --data-dir.
const (
	entriesFile     = "saved_data.csv"
	credentialsFile = "users.csv"
)

type stores struct {
	entries  domain.EntryRepository
	creds    domain.CredentialRepository
	sessions domain.SessionRepository
	close    func() error
}

func openStores(g *Globals) (*stores, error) {
	noop := func() error { return nil }

	switch g.Store {
	case "csv":
		// Sessions are process-local with file-backed stores.
		mem := memory.New()
		return &stores{
			entries:  csvfile.NewEntryStore(filepath.Join(g.DataDir, entriesFile)),
			creds:    csvfile.NewCredentialStore(filepath.Join(g.DataDir, credentialsFile)),
			sessions: mem.NewSessionRepo(),
			close:    noop,
		}, nil

	case "memory":
		mem := memory.New()
		return &stores{entries: mem, creds: mem, sessions: mem.NewSessionRepo(), close: noop}, nil

	case "sqlite":
		db, err := sqlite.Open(g.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &stores{entries: db, creds: db, sessions: sqlite.NewSessionRepo(db), close: db.Close}, nil

	case "postgres":
		if g.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for --store=postgres")
		}
		db, err := postgres.Open(g.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		return &stores{entries: db, creds: db, sessions: postgres.NewSessionRepo(db), close: db.Close}, nil
	}
	return nil, fmt.Errorf("unknown store %q", g.Store)
}
