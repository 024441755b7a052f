// Package session holds the authentication credential for the running client.
//
// The token is the single durable piece of client state. It is stored as a
// small JSON file in the config directory so a relaunch stays logged in.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// state is the on-disk shape of the session file.
type state struct {
	Token string `json:"token"`
}

// Store holds the session token and its durable backing file.
// Authenticated means exactly: a token is present.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// Open loads the session from path. A missing file is not an error;
// it simply means unauthenticated.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("invalid session file: %w", err)
	}
	s.token = st.Token
	return s, nil
}

// Set stores the token and persists it with mode 0600.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(state{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the token and its backing file. Idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// Token returns the current token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
