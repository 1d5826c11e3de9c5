// Package statestore persists small flags as a JSON file under the tsdk
// metadata directory.
package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/ports"
)

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore with a single JSON document.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store rooted at the given workspace directory. Flags
// live in <root>/.tsdk/flags.json.
func NewStore(root string) *Store {
	return &Store{path: filepath.Join(root, domain.DefaultStatePath())}
}

// GetBool retrieves the flag stored under key.
// A key that was never set reads as false.
func (s *Store) GetBool(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags, err := s.load()
	if err != nil {
		return false, err
	}
	return flags[key], nil
}

// SetBool stores the flag under key, creating the store file on first write.
func (s *Store) SetBool(_ context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags, err := s.load()
	if err != nil {
		return err
	}
	flags[key] = value

	data, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStateMarshalFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStateCreateFailed, err)
	}

	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStateWriteFailed, err)
	}

	return nil
}

func (s *Store) load() (map[string]bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]bool), nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrStateReadFailed, err)
	}

	flags := make(map[string]bool)
	if err := json.Unmarshal(data, &flags); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStateUnmarshalFailed, err)
	}
	return flags, nil
}
