// Package kv provides the key-value stores the planner persists into.
// Every Set overwrites the whole value stored under a key.
package kv

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Store defines the interface for key-value persistence
type Store interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key
	Set(ctx context.Context, key string, value []byte) error

	Close() error
}

// MemoryStore keeps values in process memory. Used for tests and the
// "memory" backend.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
