package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/regsnap-cli/internal/logger"
)

// Ensure SnapshotService implements the interface.
var _ driving.SnapshotService = (*SnapshotService)(nil)

// SnapshotService coordinates the fetch/normalise/persist pipeline.
type SnapshotService struct {
	fetcher   driven.SearchFetcher
	parser    driven.SearchResultParser
	snapshots driven.SnapshotStore
	history   driven.HistoryStore

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(
	fetcher driven.SearchFetcher,
	parser driven.SearchResultParser,
	snapshots driven.SnapshotStore,
	history driven.HistoryStore,
) *SnapshotService {
	return &SnapshotService{
		fetcher:   fetcher,
		parser:    parser,
		snapshots: snapshots,
		history:   history,
		now:       time.Now,
	}
}

// FetchRaw performs one search request and returns the raw body.
func (s *SnapshotService) FetchRaw(ctx context.Context, perPage int) ([]byte, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("fetch raw: %w", domain.ErrNotImplemented)
	}
	body, err := s.fetcher.FetchRaw(ctx, perPage)
	if err != nil {
		return nil, fmt.Errorf("fetch raw: %w", err)
	}
	logger.Debug("fetched %d bytes from search API", len(body))
	return body, nil
}

// FetchAndParse performs one search request and normalises the response.
func (s *SnapshotService) FetchAndParse(ctx context.Context, perPage int) (*domain.SearchResult, error) {
	body, err := s.FetchRaw(ctx, perPage)
	if err != nil {
		return nil, err
	}
	result, err := s.parser.Parse(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("parse search result: %w", err)
	}
	logger.Info("fetch completed: %d documents (%d reported)", len(result.Documents), result.TotalResults)
	return result, nil
}

// Save recomputes statistics, stamps fetch time, persists the snapshot
// as the current record and appends to the historical series. The
// historical append is best-effort: a write failure there is logged and
// does not fail the save.
func (s *SnapshotService) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return domain.ErrInvalidInput
	}

	snapshot.ID = uuid.New().String()
	snapshot.FetchedAt = s.now()
	snapshot.Statistics = ComputeStatistics(snapshot.Documents, snapshot.FetchedAt)

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	logger.Info("snapshot saved: %d documents, %d agencies", len(snapshot.Documents), len(snapshot.Statistics))

	s.appendHistory(ctx, snapshot)
	return nil
}

// Load returns the current snapshot, or (nil, nil) when none has ever
// been saved. An unreadable record also degrades to absent: missing or
// corrupt data is a recoverable state for reads.
func (s *SnapshotService) Load(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, domain.ErrStorageRead) {
			logger.Warn("snapshot unreadable, treating as absent: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snapshot, nil
}

// Refresh fetches, parses and saves in one step.
func (s *SnapshotService) Refresh(ctx context.Context, perPage int) (*domain.Snapshot, error) {
	result, err := s.FetchAndParse(ctx, perPage)
	if err != nil {
		return nil, err
	}
	snapshot := &domain.Snapshot{Documents: result.Documents}
	if err := s.Save(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Statistics returns the current snapshot's statistics.
func (s *SnapshotService) Statistics(ctx context.Context) ([]domain.AgencyStatistics, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return []domain.AgencyStatistics{}, nil
	}
	return snapshot.Statistics, nil
}

// Historical returns the persisted historical series.
func (s *SnapshotService) Historical(ctx context.Context) ([]domain.HistoricalChange, error) {
	entries, err := s.history.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.HistoricalChange{}, nil
		}
		if errors.Is(err, domain.ErrStorageRead) {
			logger.Warn("historical log unreadable, treating as empty: %v", err)
			return []domain.HistoricalChange{}, nil
		}
		return nil, fmt.Errorf("load historical: %w", err)
	}
	return entries, nil
}

// Cleanup removes historical entries with placeholder agency names and
// persists the result only if the set actually shrank.
func (s *SnapshotService) Cleanup(ctx context.Context) error {
	entries, err := s.Historical(ctx)
	if err != nil {
		return err
	}

	kept, removed := cleanupHistory(entries)
	if removed == 0 {
		logger.Debug("historical cleanup: nothing to remove")
		return nil
	}

	if err := s.history.Save(ctx, kept); err != nil {
		return fmt.Errorf("save historical: %w", err)
	}
	logger.Info("historical cleanup: removed %d placeholder entries", removed)
	return nil
}

// Watch delegates to the snapshot store's change detection.
func (s *SnapshotService) Watch(ctx context.Context) (<-chan struct{}, error) {
	return s.snapshots.Watch(ctx)
}

// appendHistory merges the snapshot's per-agency counts into the
// persisted log, pruning each agency to the retention cap. Failures are
// logged, never propagated: losing one historical append must not block
// the snapshot save.
func (s *SnapshotService) appendHistory(ctx context.Context, snapshot *domain.Snapshot) {
	existing, err := s.history.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("historical log unreadable, starting fresh: %v", err)
		existing = nil
	}

	merged := mergeHistory(existing, historyChanges(snapshot))
	if err := s.history.Save(ctx, merged); err != nil {
		logger.Warn("historical write failed: %v", err)
		return
	}
	logger.Debug("historical series now %d entries", len(merged))
}
