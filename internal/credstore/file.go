// Copyright (c) 2026 Gophsocial
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gophsocial/cli/internal/xdg"
)

// FileStore keeps the token in a 0600 file under the XDG state directory.
// Used when no OS keychain is available.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// OpenFile creates a file-backed store at the default XDG state location.
func OpenFile() (*FileStore, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, "token")}, nil
}

// NewFileStore creates a file-backed store at an explicit path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the stored token. A missing file means no token.
func (s *FileStore) Get() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Set writes the token with private permissions.
func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the token file. Clearing an empty store succeeds.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
