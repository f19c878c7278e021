package csvfile

import (
	"context"
	"sync"

	"wellness/internal/domain"
)

var credentialColumns = []string{"username", "password"}

// CredentialStore keeps plaintext username/password pairs in a CSV file.
// A missing or zero-byte file is seeded with domain.DefaultCredentials; a
// file holding only the header is an empty store.
type CredentialStore struct {
	mu   sync.Mutex
	path string
}

// NewCredentialStore returns a store backed by path.
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

var _ domain.CredentialRepository = (*CredentialStore)(nil)

// ListCredentials returns all credentials in file order.
func (s *CredentialStore) ListCredentials(ctx context.Context) ([]domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AddCredential appends c and rewrites the file.
func (s *CredentialStore) AddCredential(ctx context.Context, c domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}
	return s.store(append(list, c))
}

func (s *CredentialStore) load() ([]domain.Credential, error) {
	t, err := readTable(s.path, credentialColumns)
	if err != nil {
		return nil, err
	}
	if t.created {
		seed := append([]domain.Credential(nil), domain.DefaultCredentials...)
		if err := s.store(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	get := func(rec []string, col string) string {
		i, ok := t.index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	out := make([]domain.Credential, 0, len(t.rows))
	for _, rec := range t.rows {
		out = append(out, domain.Credential{Username: get(rec, "username"), Password: get(rec, "password")})
	}
	return out, nil
}

func (s *CredentialStore) store(list []domain.Credential) error {
	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{c.Username, c.Password}
	}
	return writeTable(s.path, credentialColumns, rows)
}
