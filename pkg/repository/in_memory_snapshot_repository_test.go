package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
)

func testSnapshot(gameID, version string, at time.Time) *domain.Snapshot {
	return &domain.Snapshot{
		GameID:      gameID,
		Version:     version,
		RTP:         0.97,
		BetModes:    []string{"base", "bonus"},
		Body:        []byte(`{"game_id":"` + gameID + `"}`),
		PublishedAt: at,
	}
}

func TestInMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemorySnapshotRepository()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("never published", func(t *testing.T) {
		latest, err := repo.GetLatest(ctx, "0_0_ways")
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("save is idempotent per version", func(t *testing.T) {
		inserted, err := repo.SaveSnapshot(ctx, testSnapshot("0_0_ways", "v1", t0))
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = repo.SaveSnapshot(ctx, testSnapshot("0_0_ways", "v1", t0.Add(time.Hour)))
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("latest wins", func(t *testing.T) {
		_, err := repo.SaveSnapshot(ctx, testSnapshot("0_0_ways", "v2", t0.Add(time.Minute)))
		require.NoError(t, err)

		latest, err := repo.GetLatest(ctx, "0_0_ways")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "v2", latest.Version)
		assert.Equal(t, []string{"base", "bonus"}, latest.BetModes)
	})

	t.Run("stored copy is isolated", func(t *testing.T) {
		s := testSnapshot("0_0_cluster", "c1", t0)
		_, err := repo.SaveSnapshot(ctx, s)
		require.NoError(t, err)
		s.BetModes[0] = "mutated"

		latest, err := repo.GetLatest(ctx, "0_0_cluster")
		require.NoError(t, err)
		assert.Equal(t, "base", latest.BetModes[0])
	})

	t.Run("list game IDs", func(t *testing.T) {
		ids, err := repo.ListGameIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"0_0_cluster", "0_0_ways"}, ids)
	})
}
