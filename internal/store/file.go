package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a private directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the root directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key), nil
}

// Get returns the trimmed file contents for key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, fmt.Errorf("store.Get: %w", err)
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store.Get: %w", err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Set writes value for key, replacing the file atomically.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("store.Set: create dir: %w", err)
	}
	stage := p + ".new"
	if err := os.WriteFile(stage, []byte(value), 0600); err != nil {
		return fmt.Errorf("store.Set: write: %w", err)
	}
	if err := os.Rename(stage, p); err != nil {
		os.Remove(stage) //nolint:errcheck
		return fmt.Errorf("store.Set: replace: %w", err)
	}
	return nil
}

// Remove deletes key. Removing a missing key succeeds.
func (s *FileStore) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return fmt.Errorf("store.Remove: %w", err)
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store.Remove: %w", err)
	}
	return nil
}
