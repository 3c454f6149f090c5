package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
type SnapshotStore struct {
	mu       sync.RWMutex
	snapshot *domain.Snapshot

	// SaveErr and LoadErr force failures in tests.
	SaveErr error
	LoadErr error
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Save replaces the held snapshot.
func (s *SnapshotStore) Save(_ context.Context, snapshot *domain.Snapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if snapshot == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *snapshot
	s.snapshot = &copied
	return nil
}

// Load returns the held snapshot, or domain.ErrNotFound.
func (s *SnapshotStore) Load(_ context.Context) (*domain.Snapshot, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, domain.ErrNotFound
	}
	copied := *s.snapshot
	return &copied, nil
}

// Watch is not supported by the in-memory store.
func (s *SnapshotStore) Watch(_ context.Context) (<-chan struct{}, error) {
	return nil, domain.ErrNotImplemented
}

// Close releases resources.
func (s *SnapshotStore) Close() error {
	return nil
}
