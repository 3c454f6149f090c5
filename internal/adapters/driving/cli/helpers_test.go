package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driving"
)

// mockSnapshotService implements driving.SnapshotService for command tests.
type mockSnapshotService struct {
	snapshot   *domain.Snapshot
	stats      []domain.AgencyStatistics
	historical []domain.HistoricalChange
	err        error

	refreshPerPage int
	cleanupCalled  bool
}

var _ driving.SnapshotService = (*mockSnapshotService)(nil)

func (m *mockSnapshotService) FetchRaw(context.Context, int) ([]byte, error) {
	return []byte(`{}`), m.err
}

func (m *mockSnapshotService) FetchAndParse(context.Context, int) (*domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SearchResult{}, nil
}

func (m *mockSnapshotService) Save(context.Context, *domain.Snapshot) error {
	return m.err
}

func (m *mockSnapshotService) Load(context.Context) (*domain.Snapshot, error) {
	return m.snapshot, m.err
}

func (m *mockSnapshotService) Refresh(_ context.Context, perPage int) (*domain.Snapshot, error) {
	m.refreshPerPage = perPage
	return m.snapshot, m.err
}

func (m *mockSnapshotService) Statistics(context.Context) ([]domain.AgencyStatistics, error) {
	return m.stats, m.err
}

func (m *mockSnapshotService) Historical(context.Context) ([]domain.HistoricalChange, error) {
	return m.historical, m.err
}

func (m *mockSnapshotService) Cleanup(context.Context) error {
	m.cleanupCalled = true
	return m.err
}

func (m *mockSnapshotService) Watch(context.Context) (<-chan struct{}, error) {
	return nil, domain.ErrNotImplemented
}

// setupTestServices injects a populated mock service and returns a
// cleanup that restores the previous wiring.
func setupTestServices() (*mockSnapshotService, func()) {
	fetched := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock := &mockSnapshotService{
		snapshot: &domain.Snapshot{
			ID:        "snap-1",
			FetchedAt: fetched,
			Documents: []domain.Document{
				{
					DocumentNumber: "2025-01234",
					Title:          "Reserve Requirements of Depository Institutions",
					AgencyName:     "Federal Reserve System",
					Type:           "Rule",
					Citation:       "12 CFR 204",
				},
				{
					DocumentNumber: "2025-05678",
					AgencyName:     "Internal Revenue Service",
					Type:           "Notice",
				},
			},
			Statistics: []domain.AgencyStatistics{
				{AgencyName: "Federal Reserve System", DocumentCount: 1, Checksum: "aabbccddeeff00112233445566778899aabbccddeeff00112233445566778899", LastUpdated: fetched},
				{AgencyName: "Internal Revenue Service", DocumentCount: 1, Checksum: "99887766554433221100ffeeddccbbaa99887766554433221100ffeeddccbbaa", LastUpdated: fetched},
			},
		},
		stats: []domain.AgencyStatistics{
			{AgencyName: "Federal Reserve System", DocumentCount: 1, Checksum: "aabbccddeeff00112233445566778899aabbccddeeff00112233445566778899", LastUpdated: fetched},
		},
		historical: []domain.HistoricalChange{
			{AgencyName: "Federal Reserve System", Date: fetched, DocumentCount: 1},
		},
	}

	oldService := snapshotService
	snapshotService = mock
	return mock, func() {
		snapshotService = oldService
	}
}
