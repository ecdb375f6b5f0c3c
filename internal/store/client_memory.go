package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/cinetrack/models"
)

// memoryTokenStore is a process-local [TokenStore].
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens models.TokenPair
	saved  bool
}

// NewMemoryTokenStore returns a [TokenStore] that forgets its tokens when
// the process exits.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Load(_ context.Context) (models.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.saved {
		return models.TokenPair{}, ErrTokenNotFound
	}
	return s.tokens, nil
}

func (s *memoryTokenStore) Save(_ context.Context, tokens models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tokens.AccessToken != "" {
		s.tokens.AccessToken = tokens.AccessToken
		s.saved = true
	}
	if tokens.RefreshToken != "" {
		s.tokens.RefreshToken = tokens.RefreshToken
		s.saved = true
	}
	return nil
}

func (s *memoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = models.TokenPair{}
	s.saved = false
	return nil
}

func (s *memoryTokenStore) Close() error { return nil }
