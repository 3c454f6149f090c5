package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regsnap-cli/internal/logger"
)

// HistoryFileName is the historical-log blob inside the data dir.
const HistoryFileName = "historical.json"

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore persists the historical series as one JSON blob.
type HistoryStore struct {
	path string
}

// NewHistoryStore creates a history store in dataDir, creating the
// directory on first use. An empty dataDir defaults to ~/.regsnap/data.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	dir, err := ensureDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return &HistoryStore{path: filepath.Join(dir, HistoryFileName)}, nil
}

// Save replaces the persisted log wholesale.
func (s *HistoryStore) Save(_ context.Context, entries []domain.HistoricalChange) error {
	if entries == nil {
		entries = []domain.HistoricalChange{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal historical log: %v", domain.ErrStorageWrite, err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	logger.Debug("wrote %s (%d entries)", s.path, len(entries))
	return nil
}

// Load returns the persisted log. A file that has never been written
// returns domain.ErrNotFound.
func (s *HistoryStore) Load(_ context.Context) ([]domain.HistoricalChange, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageRead, err)
	}

	var entries []domain.HistoricalChange
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageRead, s.path, err)
	}
	return entries, nil
}

// Path returns the historical log file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// Close releases resources.
func (s *HistoryStore) Close() error {
	return nil
}
