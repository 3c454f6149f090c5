package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regsnap-cli/internal/logger"
)

// SnapshotFileName is the current-snapshot blob inside the data dir.
const SnapshotFileName = "snapshot.json"

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists the current snapshot as one JSON blob.
// Writes are whole-file overwrites; concurrent writers are
// last-writer-wins, matching the single-writer usage model.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a snapshot store in dataDir, creating the
// directory on first use. An empty dataDir defaults to ~/.regsnap/data.
func NewSnapshotStore(dataDir string) (*SnapshotStore, error) {
	dir, err := ensureDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return &SnapshotStore{path: filepath.Join(dir, SnapshotFileName)}, nil
}

// Save replaces the persisted snapshot wholesale.
func (s *SnapshotStore) Save(_ context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return domain.ErrInvalidInput
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal snapshot: %v", domain.ErrStorageWrite, err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	logger.Debug("wrote %s (%d bytes)", s.path, len(data))
	return nil
}

// Load returns the persisted snapshot. A file that has never been
// written returns domain.ErrNotFound; unreadable or corrupt content
// returns an error wrapping domain.ErrStorageRead.
func (s *SnapshotStore) Load(_ context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageRead, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageRead, s.path, err)
	}
	return &snapshot, nil
}

// Watch reports rewrites of the snapshot file. Events are coalesced to
// a bare signal; the channel closes when ctx is cancelled.
func (s *SnapshotStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: the file may not exist yet, and editors and
	// atomic writers replace it rather than write in place.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch data dir: %w", err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != SnapshotFileName {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("snapshot watch error: %v", err)
			}
		}
	}()
	return changes, nil
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Close releases resources. The store holds no open handles between
// operations.
func (s *SnapshotStore) Close() error {
	return nil
}

// ensureDataDir resolves and creates the data directory.
func ensureDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".regsnap", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return dataDir, nil
}
