// Package prefs persists the user's UI preferences, currently the dark-mode
// flag.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store is a small key-value store for UI preferences.
type Store interface {
	// Get returns the stored value for key, or "" when the key is absent.
	Get(key string) (string, error)

	// Set stores the value for key.
	Set(key, value string) error
}

// fileStore keeps preferences in a single JSON object on disk.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a JSON-file-backed preference store. The file is
// created on first write.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read preference store %s: %w", s.path, err)
	}

	values := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse preference store %s: %w", s.path, err)
		}
	}
	return values, nil
}

// Get returns the stored value for key, or "" when absent.
func (s *fileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set stores the value for key.
func (s *fileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preference store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preference store %s: %w", s.path, err)
	}
	return nil
}
