// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// DayLayout is the ISO calendar-date layout used for Entry.Date.
const DayLayout = "2006-01-02"

// Field names one measured column of an Entry.
type Field string

// Measured fields, in column order.
const (
	FieldSleepHours  Field = "sleep_hours"
	FieldMood        Field = "mood"
	FieldStress      Field = "stress"
	FieldActivityMin Field = "activity_min"
)

// MeasuredFields lists the numeric fields analytics operate on.
var MeasuredFields = []Field{FieldSleepHours, FieldMood, FieldStress, FieldActivityMin}

// Columns is the fixed column order of the entry table.
var Columns = []string{"date", "user_id", "sleep_hours", "mood", "stress", "activity_min", "notes"}

// Label returns a human-readable name for the field.
func (f Field) Label() string {
	switch f {
	case FieldSleepHours:
		return "Sleep (hrs)"
	case FieldMood:
		return "Mood (1-10)"
	case FieldStress:
		return "Stress (1-10)"
	case FieldActivityMin:
		return "Physical Activity (min)"
	}
	return string(f)
}

// Valid reports whether f is one of MeasuredFields.
func (f Field) Valid() bool {
	for _, m := range MeasuredFields {
		if f == m {
			return true
		}
	}
	return false
}

// Entry is one day's wellness measurement for one user. Values are kept as the
// text they are stored as; use Value to read a measured field as a number.
type Entry struct {
	Date        string `json:"date"`
	UserID      string `json:"userId"`
	SleepHours  string `json:"sleepHours"`
	Mood        string `json:"mood"`
	Stress      string `json:"stress"`
	ActivityMin string `json:"activityMin"`
	Notes       string `json:"notes"`
}

// Raw returns the stored text of a measured field.
func (e Entry) Raw(f Field) string {
	switch f {
	case FieldSleepHours:
		return e.SleepHours
	case FieldMood:
		return e.Mood
	case FieldStress:
		return e.Stress
	case FieldActivityMin:
		return e.ActivityMin
	}
	return ""
}

// Value returns the numeric value of f, or false when the stored text is
// missing or not a number.
func (e Entry) Value(f Field) (float64, bool) {
	return ParseNumber(e.Raw(f))
}

// Day parses Date. Entries with an unparseable date report false.
func (e Entry) Day() (time.Time, bool) {
	t, err := time.ParseInLocation(DayLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Record returns the entry as a row in Columns order.
func (e Entry) Record() []string {
	return []string{e.Date, e.UserID, e.SleepHours, e.Mood, e.Stress, e.ActivityMin, e.Notes}
}

// SameKey reports whether two entries share (user_id, date).
func (e Entry) SameKey(o Entry) bool {
	return e.UserID == o.UserID && e.Date == o.Date
}

// Overwrite copies the measured fields and notes of src into e, keeping e's key.
func (e *Entry) Overwrite(src Entry) {
	e.SleepHours = src.SleepHours
	e.Mood = src.Mood
	e.Stress = src.Stress
	e.ActivityMin = src.ActivityMin
	e.Notes = src.Notes
}

// EntryFromRecord builds an Entry from a row whose header is given by index.
// Columns absent from the index come back empty.
func EntryFromRecord(rec []string, index map[string]int) Entry {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	return Entry{
		Date:        get("date"),
		UserID:      get("user_id"),
		SleepHours:  get("sleep_hours"),
		Mood:        get("mood"),
		Stress:      get("stress"),
		ActivityMin: get("activity_min"),
		Notes:       get("notes"),
	}
}

// Today returns the local calendar day of t in DayLayout.
func Today(t time.Time) string {
	return t.In(time.Local).Format(DayLayout)
}

// EntryRepository is the port for entry persistence.
type EntryRepository interface {
	// ListEntries returns every stored entry in storage order.
	ListEntries(ctx context.Context) ([]Entry, error)
	// UpsertEntry overwrites the row with the same (user_id, date) in place,
	// or appends e when none exists.
	UpsertEntry(ctx context.Context, e Entry) error
	// ReplaceEntries discards the stored collection and writes entries.
	ReplaceEntries(ctx context.Context, entries []Entry) error
}
