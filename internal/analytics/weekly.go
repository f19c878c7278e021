package analytics

import (
	"sort"
	"time"

	"wellness/internal/domain"
)

// WeekSummary is the per-field mean of one calendar week. A mean is nil when
// the week has no valid value for that field.
type WeekSummary struct {
	WeekStart   string   `json:"weekStart"`
	SleepHours  *float64 `json:"sleepHours"`
	Mood        *float64 `json:"mood"`
	Stress      *float64 `json:"stress"`
	ActivityMin *float64 `json:"activityMin"`
}

// Mean returns the week's mean for f.
func (w WeekSummary) Mean(f domain.Field) *float64 {
	switch f {
	case domain.FieldSleepHours:
		return w.SleepHours
	case domain.FieldMood:
		return w.Mood
	case domain.FieldStress:
		return w.Stress
	case domain.FieldActivityMin:
		return w.ActivityMin
	}
	return nil
}

// WeekStart returns the Monday that begins t's calendar week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

type accum struct {
	sum   [4]float64
	count [4]int
}

// WeeklySummary groups entries into Monday-start calendar weeks and returns
// one row per week present, ordered by week start. Entries with an
// unparseable date are ignored.
func WeeklySummary(entries []domain.Entry) []WeekSummary {
	weeks := make(map[string]*accum)
	for _, e := range entries {
		day, ok := e.Day()
		if !ok {
			continue
		}
		key := WeekStart(day).Format(domain.DayLayout)
		a := weeks[key]
		if a == nil {
			a = &accum{}
			weeks[key] = a
		}
		for k, f := range domain.MeasuredFields {
			if v, ok := e.Value(f); ok {
				a.sum[k] += v
				a.count[k]++
			}
		}
	}

	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]WeekSummary, 0, len(keys))
	for _, k := range keys {
		a := weeks[k]
		means := [4]*float64{}
		for i := range means {
			if a.count[i] > 0 {
				m := a.sum[i] / float64(a.count[i])
				means[i] = &m
			}
		}
		out = append(out, WeekSummary{
			WeekStart:   k,
			SleepHours:  means[0],
			Mood:        means[1],
			Stress:      means[2],
			ActivityMin: means[3],
		})
	}
	return out
}
