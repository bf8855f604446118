package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"florify-catalog/internal/domain"
)

// MemoryStore keeps sessions in a bounded in-process LRU cache.
type MemoryStore struct {
	cache *expirable.LRU[string, domain.AnalysisSession]
}

// NewMemoryStore creates a MemoryStore holding at most size sessions.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: expirable.NewLRU[string, domain.AnalysisSession](size, nil, ttl)}
}

func (m *MemoryStore) Save(_ context.Context, s *domain.AnalysisSession) error {
	m.cache.Add(s.ID, *s)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.AnalysisSession, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}
