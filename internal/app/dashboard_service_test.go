package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wellness/internal/domain"
)

func history(user string, days int) []domain.Entry {
	out := make([]domain.Entry, days)
	for i := range out {
		out[i] = domain.Entry{
			Date:        fmt.Sprintf("2026-10-%02d", i+1),
			UserID:      user,
			SleepHours:  fmt.Sprint(6 + i%3),
			Mood:        fmt.Sprint(5 + i%4),
			Stress:      fmt.Sprint(2 + i%5),
			ActivityMin: fmt.Sprint(20 + 5*i),
		}
	}
	return out
}

func newDashboard(rows []domain.Entry) *DashboardService {
	entries := NewEntryService(&mockEntryRepo{rows: rows})
	entries.now = fixedClock("2026-10-19")
	return NewDashboardService(entries)
}

func TestDashboard_Build_Empty(t *testing.T) {
	d, err := newDashboard(nil).Build(context.Background(), "demo")
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Entries) != 0 || d.Recommendations != nil || d.Correlations != nil || d.Rolling != nil {
		t.Errorf("expected empty dashboard, got %+v", d)
	}
	if len(d.Stats) != 4 {
		t.Errorf("expected stats rows for every field, got %d", len(d.Stats))
	}
}

func TestDashboard_Build_Full(t *testing.T) {
	rows := append(history("demo", 19), history("other", 3)...)
	d, err := newDashboard(rows).Build(context.Background(), "demo")
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Entries) != 19 {
		t.Fatalf("expected 19 entries, got %d", len(d.Entries))
	}
	if d.Entries[0].Date != "2026-10-19" {
		t.Errorf("expected newest first, got %s", d.Entries[0].Date)
	}
	if !d.LoggedToday {
		t.Error("expected loggedToday")
	}
	if len(d.Recommendations) != 4 {
		t.Errorf("expected 4 tips for the latest entry, got %d", len(d.Recommendations))
	}
	if d.Correlations == nil {
		t.Error("expected correlations")
	}
	if len(d.Rolling) != 4 {
		t.Fatalf("expected rolling series for 4 fields, got %d", len(d.Rolling))
	}
	sleep := d.Rolling[domain.FieldSleepHours]
	if sleep[5].Mean != nil || sleep[6].Mean == nil {
		t.Errorf("expected first defined point at index 6")
	}
	if len(d.Weekly) == 0 {
		t.Error("expected weekly rows")
	}
}

func TestDashboard_Build_FewEntriesNoRolling(t *testing.T) {
	d, err := newDashboard(history("demo", 6)).Build(context.Background(), "demo")
	if err != nil {
		t.Fatal(err)
	}
	if d.Rolling != nil {
		t.Error("rolling trends require at least TrendWindow entries")
	}
	if d.LoggedToday {
		t.Error("latest entry is not today")
	}
}

func TestDashboard_StatsRounded(t *testing.T) {
	rows := []domain.Entry{
		{Date: "2026-10-01", UserID: "demo", SleepHours: "7", Mood: "7"},
		{Date: "2026-10-02", UserID: "demo", SleepHours: "7", Mood: "8"},
		{Date: "2026-10-03", UserID: "demo", SleepHours: "8", Mood: "8"},
	}
	stats, err := newDashboard(rows).Stats(context.Background(), "demo")
	if err != nil {
		t.Fatal(err)
	}
	if *stats[0].Mean != 7.33 {
		t.Errorf("expected sleep mean 7.33, got %v", *stats[0].Mean)
	}
	if *stats[1].Mean != 7.67 {
		t.Errorf("expected mood mean 7.67, got %v", *stats[1].Mean)
	}
}

func TestDashboard_Recommendations(t *testing.T) {
	rows := []domain.Entry{
		{Date: "2026-10-01", UserID: "demo", SleepHours: "3"},
		{Date: "2026-10-02", UserID: "demo", SleepHours: "8"},
	}
	tips, latest, err := newDashboard(rows).Recommendations(context.Background(), "demo")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.Date != "2026-10-02" {
		t.Fatalf("expected latest entry, got %+v", latest)
	}
	if len(tips) != 1 || tips[0].Severity != domain.SeverityHealthy {
		t.Errorf("unexpected tips %+v", tips)
	}

	tips, latest, err = newDashboard(nil).Recommendations(context.Background(), "demo")
	if err != nil || tips != nil || latest != nil {
		t.Errorf("expected nothing for a user without entries")
	}
}

func TestDashboard_RollingInvalidWindow(t *testing.T) {
	_, err := newDashboard(history("demo", 3)).Rolling(context.Background(), "demo", domain.FieldMood, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDashboard_StoreError(t *testing.T) {
	boom := errors.New("read failed")
	entries := NewEntryService(&mockEntryRepo{listFn: func(ctx context.Context) ([]domain.Entry, error) { return nil, boom }})
	svc := NewDashboardService(entries)
	if _, err := svc.Build(context.Background(), "demo"); !errors.Is(err, boom) {
		t.Errorf("expected read error, got %v", err)
	}
	if _, err := svc.Weekly(context.Background(), "demo"); !errors.Is(err, boom) {
		t.Errorf("expected read error, got %v", err)
	}
}
