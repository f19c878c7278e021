package analytics_test

import (
	"testing"

	"wellness/internal/analytics"
	"wellness/internal/domain"
)

func TestCorrelations_KnownDataset(t *testing.T) {
	entries := []domain.Entry{
		entry("2026-01-01", "6", "5", "8", "10"),
		entry("2026-01-02", "7", "6", "6", "30"),
		entry("2026-01-03", "8", "7", "4", "20"),
		entry("2026-01-04", "9", "8", "2", "40"),
		entry("2026-01-05", "x", "", "", ""), // no valid pair, excluded everywhere
	}
	m := analytics.Correlations(entries)
	if m.Empty() {
		t.Fatal("expected a populated matrix")
	}

	tests := []struct {
		a, b domain.Field
		want float64
	}{
		{domain.FieldSleepHours, domain.FieldSleepHours, 1},
		{domain.FieldSleepHours, domain.FieldMood, 1},
		{domain.FieldSleepHours, domain.FieldStress, -1},
		{domain.FieldSleepHours, domain.FieldActivityMin, 0.8},
		{domain.FieldMood, domain.FieldActivityMin, 0.8},
		{domain.FieldStress, domain.FieldActivityMin, -0.8},
		{domain.FieldActivityMin, domain.FieldStress, -0.8},
	}
	for _, tc := range tests {
		got, ok := m.At(tc.a, tc.b)
		if !ok {
			t.Fatalf("missing coefficient %s/%s", tc.a, tc.b)
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("corr(%s, %s) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCorrelations_PairwiseRows(t *testing.T) {
	// The bad sleep cell only removes row 3 from the pairs involving sleep.
	entries := []domain.Entry{
		entry("2026-01-01", "6", "5", "8", "10"),
		entry("2026-01-02", "7", "6", "6", "30"),
		entry("2026-01-03", "x", "7", "4", "20"),
		entry("2026-01-04", "9", "8", "2", "40"),
	}
	m := analytics.Correlations(entries)
	if m.Empty() {
		t.Fatal("expected a populated matrix")
	}

	tests := []struct {
		a, b domain.Field
		want float64
	}{
		{domain.FieldMood, domain.FieldActivityMin, 0.8},
		{domain.FieldStress, domain.FieldActivityMin, -0.8},
		{domain.FieldMood, domain.FieldStress, -1},
		{domain.FieldSleepHours, domain.FieldMood, 1},
	}
	for _, tc := range tests {
		got, _ := m.At(tc.a, tc.b)
		if !almostEqual(got, tc.want) {
			t.Errorf("corr(%s, %s) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCorrelations_Empty(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.Entry
	}{
		{"no rows", nil},
		{"single row", []domain.Entry{entry("2026-01-01", "7", "7", "3", "30")}},
		{"pair with one shared row", []domain.Entry{
			entry("2026-01-01", "7", "7", "3", "30"),
			entry("2026-01-02", "8", "", "3", "30"),
		}},
		{"zero variance", []domain.Entry{
			entry("2026-01-01", "7", "7", "3", "30"),
			entry("2026-01-02", "8", "7", "4", "40"),
			entry("2026-01-03", "6", "7", "5", "20"),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := analytics.Correlations(tc.entries)
			if !m.Empty() {
				t.Fatalf("expected empty matrix, got %v", m.Values)
			}
			if _, ok := m.At(domain.FieldMood, domain.FieldStress); ok {
				t.Error("At should report false on an empty matrix")
			}
		})
	}
}
