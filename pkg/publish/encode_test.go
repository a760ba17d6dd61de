package publish

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/games"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildWays(t *testing.T) *domain.GameConfig {
	t.Helper()
	cfg, err := games.Build(games.WaysDefinition(), discardLogger())
	require.NoError(t, err)
	return cfg
}

func TestEncode_Deterministic(t *testing.T) {
	first := buildWays(t)
	second := buildWays(t)
	require.NotSame(t, first, second)

	body1, version1, err := Encode(first)
	require.NoError(t, err)
	body2, version2, err := Encode(second)
	require.NoError(t, err)

	assert.Equal(t, body1, body2)
	assert.Equal(t, version1, version2)
	assert.Len(t, version1, 64)
}

func TestEncode_VersionTracksContent(t *testing.T) {
	cfg := buildWays(t)
	_, before, err := Encode(cfg)
	require.NoError(t, err)

	def := games.WaysDefinition()
	def.BetModes[0].Distributions[2].Quota = 0.44
	def.BetModes[0].Distributions[3].Quota = 0.4795
	changed, err := games.Build(def, discardLogger())
	require.NoError(t, err)

	_, after, err := Encode(changed)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestEncode_Body(t *testing.T) {
	cfg := buildWays(t)
	body, _, err := Encode(cfg)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(body, &doc))

	assert.Equal(t, cfg.GameID, doc.GameID)
	assert.Equal(t, games.WaysDefinition().PayGroups, doc.Paytable)
	assert.Equal(t, cfg.FreespinTriggers, doc.FreespinTriggers)
	assert.Equal(t, cfg.Reels, doc.Reels)
	require.Len(t, doc.BetModes, 2)
	assert.Equal(t, 0.4695, doc.BetModes[0].DistributionByCriteria("basegame").Quota)
	assert.Equal(t, 5000.0, *doc.BetModes[0].DistributionByCriteria("wincap").WinCriteria)
}

func TestNewSnapshot(t *testing.T) {
	cfg := buildWays(t)

	snapshot, err := NewSnapshot(cfg)
	require.NoError(t, err)

	assert.Equal(t, games.WaysGameID, snapshot.GameID)
	assert.Equal(t, []string{"base", "bonus"}, snapshot.BetModes)
	assert.Equal(t, 0.97, snapshot.RTP)
	assert.True(t, snapshot.PublishedAt.IsZero(), "publish time is set by the publisher")
	assert.NotEmpty(t, snapshot.Body)
}
