package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoricalChange
	written bool

	// SaveErr and LoadErr force failures in tests.
	SaveErr error
	LoadErr error
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Save replaces the held log.
func (s *HistoryStore) Save(_ context.Context, entries []domain.HistoricalChange) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]domain.HistoricalChange(nil), entries...)
	s.written = true
	return nil
}

// Load returns the held log, or domain.ErrNotFound before first write.
func (s *HistoryStore) Load(_ context.Context) ([]domain.HistoricalChange, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.written {
		return nil, domain.ErrNotFound
	}
	return append([]domain.HistoricalChange(nil), s.entries...), nil
}

// Close releases resources.
func (s *HistoryStore) Close() error {
	return nil
}
