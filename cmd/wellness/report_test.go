package main

import (
	"bytes"
	"strings"
	"testing"

	"wellness/internal/analytics"
	"wellness/internal/app"
	"wellness/internal/domain"
)

func TestRenderReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, &app.Dashboard{Username: "demo"})

	out := buf.String()
	if !strings.Contains(out, "Wellness report for demo") || !strings.Contains(out, "No entries yet.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRenderReport(t *testing.T) {
	mean, lo, hi := 7.25, 6.5, 8.0
	d := &app.Dashboard{
		Username: "demo",
		Entries:  []domain.Entry{{Date: "2026-10-19", UserID: "demo"}, {Date: "2026-10-18", UserID: "demo"}},
		Stats: []analytics.FieldStats{
			{Field: domain.FieldSleepHours, Label: "Sleep (hrs)", Count: 2, Mean: &mean, Min: &lo, Max: &hi},
			{Field: domain.FieldMood, Label: "Mood (1-10)"},
		},
		Recommendations: []domain.Tip{
			{Field: domain.FieldSleepHours, Severity: domain.SeverityHealthy, Text: "Sleep: Healthy - 7-9 hours."},
			{Field: domain.FieldStress, Severity: domain.SeverityHigh, Text: "Stress: High"},
		},
		Correlations: &analytics.Matrix{
			Fields: []domain.Field{domain.FieldSleepHours, domain.FieldMood},
			Values: [][]float64{{1, 0.5}, {0.5, 1}},
		},
	}

	var buf bytes.Buffer
	renderReport(&buf, d)
	out := buf.String()

	for _, want := range []string{
		"2 entries, latest 2026-10-19",
		"mean 7.25  min 6.5  max 8  (n=2)",
		"no data",
		"[healthy] Sleep: Healthy - 7-9 hours.",
		"[high] Stress: High",
		"sleep_hours / mood",
		"0.5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
