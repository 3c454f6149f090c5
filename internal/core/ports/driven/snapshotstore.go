package driven

import (
	"context"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
)

// SnapshotStore persists the current snapshot as a single durable record.
// Save is a full overwrite; there is no merge.
type SnapshotStore interface {
	// Save replaces the persisted snapshot wholesale.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Load returns the current snapshot. A record that has never been
	// written returns domain.ErrNotFound; an unreadable or corrupt record
	// returns an error wrapping domain.ErrStorageRead.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Watch reports when the persisted snapshot changes underneath the
	// process, e.g. another invocation rewrote the file. The channel is
	// closed when ctx is cancelled. Stores without change detection
	// return domain.ErrNotImplemented; callers treat Watch as optional.
	Watch(ctx context.Context) (<-chan struct{}, error)

	// Close releases resources.
	Close() error
}
