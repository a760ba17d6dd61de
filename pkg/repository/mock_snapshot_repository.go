package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
)

var _ SnapshotRepository = (*MockSnapshotRepository)(nil)

// MockSnapshotRepository is a mock implementation of SnapshotRepository for testing.
// It uses testify/mock to allow test assertions on method calls.
type MockSnapshotRepository struct {
	mock.Mock
}

// NewMockSnapshotRepository creates a new mock snapshot repository.
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{}
}

// SaveSnapshot mocks storing a snapshot.
func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) (bool, error) {
	args := m.Called(ctx, snapshot)
	return args.Bool(0), args.Error(1)
}

// GetLatest mocks retrieving the newest snapshot of a game.
func (m *MockSnapshotRepository) GetLatest(ctx context.Context, gameID string) (*domain.Snapshot, error) {
	args := m.Called(ctx, gameID)
	snapshot, _ := args.Get(0).(*domain.Snapshot)
	return snapshot, args.Error(1)
}

// ListGameIDs mocks listing published games.
func (m *MockSnapshotRepository) ListGameIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
