// Package session holds the administrator's bearer credential between runs.
//
// The store is a dumb persistent slot: one token in one file under a fixed
// name. It has no expiry and no refresh logic; server-side expiry, if any,
// surfaces later as authorization failures on API calls.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed name of the credential file inside the state dir.
const tokenFileName = "token"

// Store persists a single opaque credential in a directory on disk.
// Constructed with an explicit directory so tests can run several isolated
// sessions side by side.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("session: mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

// Set persists the credential. It must complete before any caller treats the
// session as authenticated: a process restart right after Set returns has to
// observe the stored token.
func (s *Store) Set(token string) error {
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: write token: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("session: store token: %w", err)
	}
	return nil
}

// Get returns the stored credential and whether one is present.
func (s *Store) Get() (string, bool) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(b))
	return token, token != ""
}

// Clear removes the credential. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: clear token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-empty credential is stored. The check
// is purely local; it never performs a server round-trip, so a stale token
// still counts as authenticated here (the backend rejects it later).
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Get()
	return ok
}
