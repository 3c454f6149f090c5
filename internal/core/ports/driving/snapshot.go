package driving

import (
	"context"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

// SnapshotService is the core contract exposed to the presentation layer.
// Every operation is a self-contained unit of work; no background
// scheduling is implied.
type SnapshotService interface {
	// FetchRaw performs one search request and returns the raw body.
	FetchRaw(ctx context.Context, perPage int) ([]byte, error)

	// FetchAndParse performs one search request and normalises the
	// response into a SearchResult.
	FetchAndParse(ctx context.Context, perPage int) (*domain.SearchResult, error)

	// Save recomputes statistics from the snapshot's documents, stamps
	// fetch time, persists the snapshot as the current record and
	// appends to the historical series. A failed historical append is
	// logged but does not fail the save.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Load returns the current snapshot, or (nil, nil) when none has
	// ever been saved. Missing data is a normal state, not an error.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Refresh fetches, parses and saves in one step, returning the
	// snapshot it persisted.
	Refresh(ctx context.Context, perPage int) (*domain.Snapshot, error)

	// Statistics returns the current snapshot's per-agency statistics,
	// or an empty slice when no snapshot exists.
	Statistics(ctx context.Context) ([]domain.AgencyStatistics, error)

	// Historical returns the persisted historical series, ascending by
	// date, or an empty slice when none exists.
	Historical(ctx context.Context) ([]domain.HistoricalChange, error)

	// Cleanup removes historical entries with placeholder agency names
	// and persists the result if anything was removed.
	Cleanup(ctx context.Context) error

	// Watch reports external changes to the persisted snapshot, for
	// read surfaces that refresh live. Optional; stores without change
	// detection return domain.ErrNotImplemented.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
