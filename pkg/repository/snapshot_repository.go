package repository

import (
	"context"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
)

// SnapshotRepository stores published game config snapshots.
// Snapshots are append-only: a (game_id, version) pair is written at most once.
type SnapshotRepository interface {
	// SaveSnapshot stores a snapshot. Saving a version that already exists is a no-op.
	// Returns true if a new row was written.
	SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) (bool, error)

	// GetLatest returns the most recently published snapshot of a game.
	// Returns nil if the game has never been published.
	GetLatest(ctx context.Context, gameID string) (*domain.Snapshot, error)

	// ListGameIDs returns every published game ID in ascending order.
	ListGameIDs(ctx context.Context) ([]string, error)
}
