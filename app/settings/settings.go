// Package settings is a small file-backed key-value store for the flags that
// must survive restarts: backend migration state and the login session. It is
// opened once at startup and passed explicitly to whoever needs it rather
// than living in a package global.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store holds the persisted settings. Every Put writes the file through so a
// crash never loses a recorded flag.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]any
}

// Open loads the settings file at path, creating an empty store if the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]any)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, fmt.Errorf("settings file %s: %w", path, err)
		}
	}
	return s, nil
}

// Bool returns the stored boolean for key, or def when the key is absent or
// holds a non-boolean.
func (s *Store) Bool(key string, def bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return def
}

// String returns the stored string for key, or def when absent.
func (s *Store) String(key, def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return def
}

// PutBool records a boolean and flushes the store.
func (s *Store) PutBool(key string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
	return s.flushLocked()
}

// PutString records a string and flushes the store.
func (s *Store) PutString(key, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
	return s.flushLocked()
}

// Remove deletes a key and flushes the store. Removing an absent key is a
// no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flushLocked()
}

// Close flushes any state to disk. The store must not be used afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	// Write-and-rename so a crash mid-write cannot truncate the file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
