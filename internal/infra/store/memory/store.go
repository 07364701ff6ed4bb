// Package memory holds the registry snapshot in process memory only.
// Useful for tests and for running the hub without a backing store; every
// restart starts from an empty registry.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu   sync.Mutex
	data string
	set  bool
}

func New() *Store {
	return &Store{}
}

func (s *Store) Get(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", nil
	}
	return s.data, nil
}

func (s *Store) Set(_ context.Context, data string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.set = true
	return nil
}

func (s *Store) Remove(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = ""
	s.set = false
	return nil
}
