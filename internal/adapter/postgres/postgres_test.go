package postgres

import (
	"context"
	"os"
	"testing"

	"wellness/internal/domain"
)

// Runs only against a disposable database named by WELLNESS_TEST_DATABASE_URL.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("WELLNESS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("WELLNESS_TEST_DATABASE_URL not set")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()
	for _, stmt := range []string{"DELETE FROM entries", "DELETE FROM sessions"} {
		if _, err := db.sql.ExecContext(ctx, stmt); err != nil {
			t.Fatal(err)
		}
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEntryUpsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_ = db.UpsertEntry(ctx, domain.Entry{Date: "2026-10-18", UserID: "demo", Mood: "5"})
	_ = db.UpsertEntry(ctx, domain.Entry{Date: "2026-10-19", UserID: "demo", Mood: "6"})
	if err := db.UpsertEntry(ctx, domain.Entry{Date: "2026-10-18", UserID: "demo", Mood: "9", Notes: "n"}); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	list, err := db.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if list[0].Date != "2026-10-18" || list[0].Mood != "9" || list[0].Notes != "n" {
		t.Errorf("expected first row overwritten in place, got %+v", list[0])
	}
}

func TestCredentialsSeeded(t *testing.T) {
	db := openTestDB(t)
	list, err := db.ListCredentials(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) < 2 || list[0].Username != "user1" {
		t.Errorf("expected demo accounts first, got %+v", list)
	}
}
