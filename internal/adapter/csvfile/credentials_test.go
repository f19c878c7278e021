package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wellness/internal/domain"
)

func TestCredentialStore_SeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	s := NewCredentialStore(path)

	list, err := s.ListCredentials(context.Background())
	if err != nil {
		t.Fatalf("ListCredentials: %v", err)
	}
	if len(list) != 2 || list[0] != domain.DefaultCredentials[0] || list[1] != domain.DefaultCredentials[1] {
		t.Fatalf("expected demo accounts, got %+v", list)
	}

	b, _ := os.ReadFile(path)
	if string(b) != "username,password\nuser1,demo\ndemo,demo\n" {
		t.Errorf("unexpected file contents %q", string(b))
	}
}

func TestCredentialStore_ZeroByteFileIsSeeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	list, err := NewCredentialStore(path).ListCredentials(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("expected seeded accounts, got %+v", list)
	}
}

func TestCredentialStore_HeaderOnlyIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	if err := os.WriteFile(path, []byte("username,password\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewCredentialStore(path)
	ctx := context.Background()

	list, err := s.ListCredentials(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no credentials, got %+v", list)
	}

	if err := s.AddCredential(ctx, domain.Credential{Username: "alice", Password: "pw"}); err != nil {
		t.Fatal(err)
	}
	list, _ = s.ListCredentials(ctx)
	if len(list) != 1 || list[0].Username != "alice" {
		t.Errorf("expected only alice, got %+v", list)
	}
}

func TestCredentialStore_AddPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	ctx := context.Background()
	if err := NewCredentialStore(path).AddCredential(ctx, domain.Credential{Username: "alice", Password: "p,w"}); err != nil {
		t.Fatalf("AddCredential: %v", err)
	}

	list, err := NewCredentialStore(path).ListCredentials(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 credentials, got %d", len(list))
	}
	if got := list[2]; got.Username != "alice" || got.Password != "p,w" {
		t.Errorf("unexpected credential %+v", got)
	}
}
