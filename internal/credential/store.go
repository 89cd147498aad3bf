// Package credential persists the bearer token that authenticates the
// dashboard session across process restarts.
package credential

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store holds at most one credential. An empty string means no credential.
type Store interface {
	// Load returns the persisted credential, or "" when none is stored.
	Load() (string, error)
	// Save replaces the stored credential. Last write wins.
	Save(token string) error
	// Clear removes the stored credential. Clearing an empty store is a no-op.
	Clear() error
}

type credentialFile struct {
	AuthToken string `json:"authToken"`
}

// FileStore persists the credential as JSON on disk so sessions survive
// restarts.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore builds a file-backed store at path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credentials file: %w", err)
	}

	var f credentialFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return "", fmt.Errorf("parse credentials file: %w", err)
	}
	return f.AuthToken, nil
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	raw, err := json.Marshal(credentialFile{AuthToken: token})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}

// MemoryStore keeps the credential in memory. Used by tests and short-lived
// tools that should not touch the durable slot.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
