package csvfile

import (
	"context"
	"sync"

	"wellness/internal/domain"
)

// EntryStore keeps wellness entries in a single CSV file.
type EntryStore struct {
	mu   sync.Mutex
	path string
}

// NewEntryStore returns a store backed by path. The file is created on first use.
func NewEntryStore(path string) *EntryStore {
	return &EntryStore{path: path}
}

var _ domain.EntryRepository = (*EntryStore)(nil)

// Path returns the backing file.
func (s *EntryStore) Path() string { return s.path }

// ListEntries loads every row. Columns missing from the file come back empty
// and unknown columns are dropped.
func (s *EntryStore) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// UpsertEntry overwrites the row sharing e's (user_id, date) in place, or
// appends e, then rewrites the file.
func (s *EntryStore) UpsertEntry(ctx context.Context, e domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}
	found := false
	for i := range list {
		if list[i].SameKey(e) {
			list[i].Overwrite(e)
			found = true
			break
		}
	}
	if !found {
		list = append(list, e)
	}
	return s.store(list)
}

// ReplaceEntries rewrites the file with exactly entries.
func (s *EntryStore) ReplaceEntries(ctx context.Context, entries []domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(entries)
}

func (s *EntryStore) load() ([]domain.Entry, error) {
	t, err := readTable(s.path, domain.Columns)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Entry, 0, len(t.rows))
	for _, rec := range t.rows {
		out = append(out, domain.EntryFromRecord(rec, t.index))
	}
	return out, nil
}

func (s *EntryStore) store(entries []domain.Entry) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = e.Record()
	}
	return writeTable(s.path, domain.Columns, rows)
}
