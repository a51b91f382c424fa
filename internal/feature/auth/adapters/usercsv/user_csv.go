// Package usercsv persists the user registry as an append-only CSV table.
//
// The table has a Username,Password header; the Password column holds the
// client-side hash, never a plaintext password. Appending one line per new
// user is the only write operation; existing content is never rewritten.
package usercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"energy_backend/internal/feature/auth/domain"
	"energy_backend/internal/feature/auth/domain/entity"
)

// Store is a credential store backed by a CSV file, with an in-memory map for
// lookups. The mutex serializes Register calls, so concurrent registrations
// cannot interleave their file appends.
type Store struct {
	path string

	mu    sync.RWMutex
	users map[string]entity.User
}

// NewStore creates a store for the given users file. Call LoadAll before use.
func NewStore(path string) *Store {
	return &Store{path: path, users: make(map[string]entity.User)}
}

// LoadAll reads the whole credential table, fully replacing the in-memory map.
// The header must be exactly Username,Password; anything else fails with
// domain.ErrDataFormat.
func (s *Store) LoadAll() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%w: missing header", domain.ErrDataFormat)
	}
	if len(header) != 2 || strings.TrimSpace(header[0]) != "Username" || strings.TrimSpace(header[1]) != "Password" {
		return fmt.Errorf("%w: expected Username,Password header", domain.ErrDataFormat)
	}

	users := make(map[string]entity.User)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrDataFormat, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != 2 {
			return fmt.Errorf("%w: row has %d columns", domain.ErrDataFormat, len(rec))
		}
		users[rec[0]] = entity.User{Username: rec[0], PasswordHash: rec[1]}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	return nil
}

// Lookup returns the stored password hash for a username.
func (s *Store) Lookup(username string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	return u.PasswordHash, ok
}

// Register inserts a new credential pair and appends it to the users file.
// An existing username fails with domain.ErrUserExists and nothing is written.
func (s *Store) Register(username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return domain.ErrUserExists
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open users file for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s,%s\n", username, passwordHash); err != nil {
		return fmt.Errorf("append user: %w", err)
	}

	s.users[username] = entity.User{Username: username, PasswordHash: passwordHash}
	return nil
}
