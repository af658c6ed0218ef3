// Package memstore provides a process-local implementation of domain.Medium.
package memstore

import (
	"context"
	"sync"

	"github.com/runoshun/tracker/internal/domain"
)

// Store keeps values in a map. Nothing survives the process.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Ensure Store implements domain.Medium.
var _ domain.Medium = (*Store)(nil)
