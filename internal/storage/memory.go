package storage

import (
	"context"
	"sync"
)

// MemoryStore is a concurrency-safe in-memory TokenStore
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]string),
	}
}

func (s *MemoryStore) SaveConsentToken(ctx context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[userID] = token
	return nil
}

func (s *MemoryStore) GetConsentToken(ctx context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[userID]
	if !ok || token == "" {
		return "", ErrNotFound
	}
	return token, nil
}
