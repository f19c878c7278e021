package analytics_test

import (
	"errors"
	"fmt"
	"testing"

	"wellness/internal/analytics"
	"wellness/internal/domain"
)

func sleepSeries(values ...string) []domain.Entry {
	out := make([]domain.Entry, len(values))
	for i, v := range values {
		out[i] = entry(fmt.Sprintf("2026-01-%02d", i+1), v, "", "", "")
	}
	return out
}

func TestRollingMean_ShorterThanWindow(t *testing.T) {
	points, err := analytics.RollingMean(sleepSeries("7", "8", "6"), domain.FieldSleepHours, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Mean != nil {
			t.Errorf("%s: expected undefined mean, got %v", p.Date, *p.Mean)
		}
	}
}

func TestRollingMean_TrailingWindow(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	raw := []string{"1", "2", "3", "4", "5", "6"}
	// Feed in reverse order; the series must be sorted by date first.
	entries := sleepSeries(raw...)
	reversed := make([]domain.Entry, len(entries))
	for i := range entries {
		reversed[len(entries)-1-i] = entries[i]
	}

	const window = 3
	points, err := analytics.RollingMean(reversed, domain.FieldSleepHours, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range points {
		if p.Date != entries[i].Date {
			t.Fatalf("point %d: expected date %s, got %s", i, entries[i].Date, p.Date)
		}
		if i < window-1 {
			if p.Mean != nil {
				t.Errorf("point %d: expected undefined, got %v", i, *p.Mean)
			}
			continue
		}
		want := (values[i] + values[i-1] + values[i-2]) / window
		if p.Mean == nil || !almostEqual(*p.Mean, want) {
			t.Errorf("point %d: expected %v, got %v", i, want, p.Mean)
		}
	}
}

func TestRollingMean_MissingValueBreaksWindow(t *testing.T) {
	points, err := analytics.RollingMean(sleepSeries("1", "bad", "3", "4", "5"), domain.FieldSleepHours, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []*float64{nil, nil, nil, ptr(3.5), ptr(4.5)}
	for i, p := range points {
		switch {
		case want[i] == nil && p.Mean != nil:
			t.Errorf("point %d: expected undefined, got %v", i, *p.Mean)
		case want[i] != nil && (p.Mean == nil || !almostEqual(*p.Mean, *want[i])):
			t.Errorf("point %d: expected %v, got %v", i, *want[i], p.Mean)
		}
	}
}

func TestRollingMean_WindowOne(t *testing.T) {
	points, _ := analytics.RollingMean(sleepSeries("7.5"), domain.FieldSleepHours, 1)
	if len(points) != 1 || points[0].Mean == nil || *points[0].Mean != 7.5 {
		t.Fatalf("unexpected points %+v", points)
	}
}

func TestRollingMean_InvalidArgs(t *testing.T) {
	if _, err := analytics.RollingMean(nil, domain.FieldSleepHours, 0); !errors.Is(err, analytics.ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}
	if _, err := analytics.RollingMean(nil, domain.Field("notes"), 7); err == nil {
		t.Error("expected error for unknown field")
	}
}

func ptr(v float64) *float64 { return &v }
