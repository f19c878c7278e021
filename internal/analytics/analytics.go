// Package analytics computes descriptive statistics and trend series over a
// user's entries. Values that do not parse as numbers are treated as missing
// and excluded, never as zero.
package analytics

import (
	"sort"

	"wellness/internal/domain"
)

// FieldStats summarizes one measured field. Mean, Min and Max are nil when
// the field has no valid values.
type FieldStats struct {
	Field domain.Field `json:"field"`
	Label string       `json:"label"`
	Count int          `json:"count"`
	Mean  *float64     `json:"mean"`
	Min   *float64     `json:"min"`
	Max   *float64     `json:"max"`
}

// Summarize returns mean, min and max for every measured field.
func Summarize(entries []domain.Entry) []FieldStats {
	out := make([]FieldStats, 0, len(domain.MeasuredFields))
	for _, f := range domain.MeasuredFields {
		st := FieldStats{Field: f, Label: f.Label()}
		var sum, lo, hi float64
		for _, e := range entries {
			v, ok := e.Value(f)
			if !ok {
				continue
			}
			if st.Count == 0 || v < lo {
				lo = v
			}
			if st.Count == 0 || v > hi {
				hi = v
			}
			sum += v
			st.Count++
		}
		if st.Count > 0 {
			mean := sum / float64(st.Count)
			st.Mean, st.Min, st.Max = &mean, &lo, &hi
		}
		out = append(out, st)
	}
	return out
}

// SortAscending returns a copy of entries ordered by date, oldest first.
// Entries with equal dates keep their relative order.
func SortAscending(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SortDescending returns a copy of entries ordered by date, newest first.
func SortDescending(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// ForUser filters entries to those owned by userID, preserving order.
func ForUser(entries []domain.Entry, userID string) []domain.Entry {
	var out []domain.Entry
	for _, e := range entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}
