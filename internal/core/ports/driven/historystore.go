package driven

import (
	"context"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

// HistoryStore persists the historical series of per-agency counts.
// Like the snapshot store, Save replaces the whole log.
type HistoryStore interface {
	// Save replaces the persisted historical log wholesale.
	Save(ctx context.Context, entries []domain.HistoricalChange) error

	// Load returns the persisted log. A log that has never been written
	// returns domain.ErrNotFound; an unreadable or corrupt log returns an
	// error wrapping domain.ErrStorageRead.
	Load(ctx context.Context) ([]domain.HistoricalChange, error)

	// Close releases resources.
	Close() error
}
