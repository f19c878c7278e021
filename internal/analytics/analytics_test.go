package analytics_test

import (
	"math"
	"testing"

	"wellness/internal/analytics"
	"wellness/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func entry(date, sleep, mood, stress, activity string) domain.Entry {
	return domain.Entry{Date: date, UserID: "demo", SleepHours: sleep, Mood: mood, Stress: stress, ActivityMin: activity}
}

func TestSummarize(t *testing.T) {
	entries := []domain.Entry{
		entry("2026-01-01", "6", "5", "3", "20"),
		entry("2026-01-02", "8", "x", "5", "40"),
		entry("2026-01-03", "", "7", "4", "60"),
	}
	stats := analytics.Summarize(entries)
	if len(stats) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(stats))
	}

	sleep := stats[0]
	if sleep.Field != domain.FieldSleepHours || sleep.Count != 2 {
		t.Fatalf("unexpected sleep stats %+v", sleep)
	}
	if !almostEqual(*sleep.Mean, 7) || *sleep.Min != 6 || *sleep.Max != 8 {
		t.Errorf("sleep mean/min/max = %v/%v/%v", *sleep.Mean, *sleep.Min, *sleep.Max)
	}

	mood := stats[1]
	if mood.Count != 2 || !almostEqual(*mood.Mean, 6) {
		t.Errorf("mood stats %+v", mood)
	}
}

func TestSummarize_NoValidValues(t *testing.T) {
	stats := analytics.Summarize([]domain.Entry{entry("2026-01-01", "", "", "", "")})
	for _, st := range stats {
		if st.Count != 0 || st.Mean != nil || st.Min != nil || st.Max != nil {
			t.Errorf("expected empty stats, got %+v", st)
		}
	}
}

func TestSortDescending(t *testing.T) {
	entries := []domain.Entry{
		entry("2026-01-02", "", "", "", ""),
		entry("2026-01-03", "", "", "", ""),
		entry("2026-01-01", "", "", "", ""),
	}
	got := analytics.SortDescending(entries)
	if got[0].Date != "2026-01-03" || got[2].Date != "2026-01-01" {
		t.Errorf("unexpected order %v", got)
	}
	if entries[0].Date != "2026-01-02" {
		t.Error("input slice was mutated")
	}
}

func TestForUser(t *testing.T) {
	entries := []domain.Entry{
		{Date: "2026-01-01", UserID: "a"},
		{Date: "2026-01-01", UserID: "b"},
		{Date: "2026-01-02", UserID: "a"},
	}
	if got := analytics.ForUser(entries, "a"); len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}
	if got := analytics.ForUser(entries, "c"); len(got) != 0 {
		t.Errorf("expected no entries, got %d", len(got))
	}
}
