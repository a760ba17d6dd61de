package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
)

var _ SnapshotRepository = (*InMemorySnapshotRepository)(nil)

// InMemorySnapshotRepository keeps snapshots in process memory.
// Used by dry-run publishing and tests.
type InMemorySnapshotRepository struct {
	snapshots map[string][]*domain.Snapshot // "game-id" -> snapshots in save order
	mu        sync.RWMutex                  // Protects snapshots
}

// NewInMemorySnapshotRepository creates an empty repository.
func NewInMemorySnapshotRepository() *InMemorySnapshotRepository {
	return &InMemorySnapshotRepository{
		snapshots: make(map[string][]*domain.Snapshot),
	}
}

// SaveSnapshot stores a copy of snapshot unless its version is already stored.
func (r *InMemorySnapshotRepository) SaveSnapshot(_ context.Context, snapshot *domain.Snapshot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.snapshots[snapshot.GameID] {
		if s.Version == snapshot.Version {
			return false, nil
		}
	}

	stored := *snapshot
	stored.BetModes = append([]string(nil), snapshot.BetModes...)
	stored.Body = append([]byte(nil), snapshot.Body...)
	r.snapshots[snapshot.GameID] = append(r.snapshots[snapshot.GameID], &stored)

	return true, nil
}

// GetLatest returns the snapshot with the newest PublishedAt; ties go to the later save.
func (r *InMemorySnapshotRepository) GetLatest(_ context.Context, gameID string) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.Snapshot
	for _, s := range r.snapshots[gameID] {
		if latest == nil || !s.PublishedAt.Before(latest.PublishedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}

	out := *latest
	return &out, nil
}

// ListGameIDs returns the published game IDs in ascending order.
func (r *InMemorySnapshotRepository) ListGameIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.snapshots))
	for id := range r.snapshots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
