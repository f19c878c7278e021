package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"wellness/internal/analytics"
	"wellness/internal/domain"
)

// EntryInput is a day's measurements as submitted by a user. Date is accepted
// for symmetry with stored entries but is always replaced by the current day.
type EntryInput struct {
	Date        string  `json:"date,omitempty"`
	SleepHours  float64 `json:"sleepHours"`
	Mood        int     `json:"mood"`
	Stress      int     `json:"stress"`
	ActivityMin int     `json:"activityMin"`
	Notes       string  `json:"notes"`
}

// Validate checks the input against the entry form bounds.
func (in EntryInput) Validate() error {
	switch {
	case in.SleepHours < 0 || in.SleepHours > 24:
		return errors.New("sleepHours must be within [0, 24]")
	case in.Mood < 1 || in.Mood > 10:
		return errors.New("mood must be within [1, 10]")
	case in.Stress < 1 || in.Stress > 10:
		return errors.New("stress must be within [1, 10]")
	case in.ActivityMin < 0 || in.ActivityMin > 1440:
		return errors.New("activityMin must be within [0, 1440]")
	}
	return nil
}

// ValidationError wraps an input rejection so adapters can tell it apart from
// storage failures.
type ValidationError struct{ Err error }

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// EntryService encapsulates daily entry use cases.
type EntryService struct {
	repo domain.EntryRepository
	now  func() time.Time
}

// NewEntryService creates an EntryService backed by the given repository.
func NewEntryService(repo domain.EntryRepository) *EntryService {
	return &EntryService{repo: repo, now: time.Now}
}

// Today returns the current local day.
func (s *EntryService) Today() string {
	return domain.Today(s.now())
}

// Save stores today's entry for username, overwriting an earlier save from
// the same day, and returns the updated collection.
func (s *EntryService) Save(ctx context.Context, username string, in EntryInput) ([]domain.Entry, error) {
	_, rows, err := s.save(ctx, username, in)
	return rows, err
}

// SaveToday saves like Save and returns the stored row together with the day
// it was stamped with, taken from the collection the save produced.
func (s *EntryService) SaveToday(ctx context.Context, username string, in EntryInput) (*domain.Entry, string, error) {
	day, rows, err := s.save(ctx, username, in)
	if err != nil {
		return nil, day, err
	}
	return findEntry(rows, username, day), day, nil
}

func (s *EntryService) save(ctx context.Context, username string, in EntryInput) (string, []domain.Entry, error) {
	if username == "" {
		return "", nil, &ValidationError{Err: errors.New("username required")}
	}
	if err := in.Validate(); err != nil {
		return "", nil, &ValidationError{Err: err}
	}
	e := domain.Entry{
		Date:        s.Today(),
		UserID:      username,
		SleepHours:  domain.FormatNumber(in.SleepHours, 2),
		Mood:        strconv.Itoa(in.Mood),
		Stress:      strconv.Itoa(in.Stress),
		ActivityMin: strconv.Itoa(in.ActivityMin),
		Notes:       in.Notes,
	}
	if err := s.repo.UpsertEntry(ctx, e); err != nil {
		return e.Date, nil, fmt.Errorf("save entry: %w", err)
	}
	rows, err := s.repo.ListEntries(ctx)
	return e.Date, rows, err
}

// All returns every stored entry in storage order.
func (s *EntryService) All(ctx context.Context) ([]domain.Entry, error) {
	return s.repo.ListEntries(ctx)
}

// ListForUser returns username's entries, newest first.
func (s *EntryService) ListForUser(ctx context.Context, username string) ([]domain.Entry, error) {
	all, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SortDescending(analytics.ForUser(all, username)), nil
}

// GetToday returns username's entry for the current day, or nil.
func (s *EntryService) GetToday(ctx context.Context, username string) (*domain.Entry, string, error) {
	today := s.Today()
	all, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, today, err
	}
	return findEntry(all, username, today), today, nil
}

func findEntry(rows []domain.Entry, username, day string) *domain.Entry {
	for _, e := range rows {
		if e.UserID == username && e.Date == day {
			return &e
		}
	}
	return nil
}
