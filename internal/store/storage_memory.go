package store

import (
	"context"
	"sync"
)

// memorySettingsStore keeps settings in process memory. Values are lost on
// restart, so it only suits tests and throwaway deployments.
type memorySettingsStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemorySettingsStore returns an empty in-memory [SettingsStore].
func NewMemorySettingsStore() SettingsStore {
	return &memorySettingsStore{values: make(map[string]string)}
}

func (s *memorySettingsStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStoreClosed
	}
	v, ok := s.values[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return v, nil
}

func (s *memorySettingsStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	s.values[key] = value
	return nil
}

func (s *memorySettingsStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
