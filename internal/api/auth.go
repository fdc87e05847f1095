package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/meufuturo/futuro/internal/common"
)

// authState is the persisted session credential.
type authState struct {
	SavedAt time.Time `json:"saved_at"`
	Token   string    `json:"token"`
}

// TokenStore persists the bearer token under the XDG data directory.
// A classified auth failure clears the stored token so the next call
// fails fast with ErrNotAuthenticated instead of retrying a dead
// credential.
type TokenStore struct {
	path string
	mu   sync.Mutex
}

// NewTokenStore creates a store rooted at the default state file.
func NewTokenStore() (*TokenStore, error) {
	path, err := stateFilePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token state path: %w", err)
	}
	return &TokenStore{path: path}, nil
}

// NewTokenStoreAt creates a store using an explicit file path.
func NewTokenStoreAt(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Token returns the saved bearer token, or ErrNotAuthenticated when none
// is stored.
func (s *TokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", common.ErrNotAuthenticated
	}

	var state authState
	if err := json.Unmarshal(data, &state); err != nil || state.Token == "" {
		return "", common.ErrNotAuthenticated
	}

	return state.Token, nil
}

// Save persists a new bearer token with owner-only permissions.
func (s *TokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := authState{Token: token, SavedAt: time.Now()}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the saved token. Missing state is not an error.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	slog.Info("Cleared saved API token", "state_file", s.path)
	return nil
}

func stateFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataDir, "futuro", "auth.json"), nil
}
