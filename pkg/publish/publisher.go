package publish

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/AccelByte/extend-slot-config-common/pkg/common"
	"github.com/AccelByte/extend-slot-config-common/pkg/registry"
	"github.com/AccelByte/extend-slot-config-common/pkg/repository"
)

// Result describes the outcome of publishing one game.
type Result struct {
	GameID   string `json:"game_id"`
	Version  string `json:"version"`
	Inserted bool   `json:"inserted"` // false if this version was already stored
}

// Publisher writes snapshots of registered games to a repository.
type Publisher struct {
	registry registry.Registry
	repo     repository.SnapshotRepository
	clock    clockwork.Clock
	logger   *slog.Logger
}

// NewPublisher creates a new Publisher.
//
// Parameters:
//   - reg: Registry the published records are read from
//   - repo: Snapshot store
//   - clock: Source of publish timestamps
//   - logger: Structured logger for operational logging
func NewPublisher(reg registry.Registry, repo repository.SnapshotRepository, clock clockwork.Clock, logger *slog.Logger) *Publisher {
	return &Publisher{
		registry: reg,
		repo:     repo,
		clock:    clock,
		logger:   logger,
	}
}

// Publish stores a snapshot of each named game, or of every registered game when none
// are named. It stops at the first failure; results for games already published are returned.
func (p *Publisher) Publish(ctx context.Context, gameIDs ...string) ([]Result, error) {
	if len(gameIDs) == 0 {
		gameIDs = p.registry.GameIDs()
	}

	results := make([]Result, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := p.publishOne(ctx, gameID)
		if err != nil {
			p.logger.Error("Failed to publish game config",
				"game_id", gameID,
				"error", err,
			)
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (p *Publisher) publishOne(ctx context.Context, gameID string) (Result, error) {
	cfg, err := p.registry.Get(gameID)
	if err != nil {
		return Result{}, err
	}

	snapshot, err := NewSnapshot(cfg)
	if err != nil {
		return Result{}, err
	}
	snapshot.PublishedAt = common.NowUTC(p.clock)

	inserted, err := p.repo.SaveSnapshot(ctx, snapshot)
	if err != nil {
		return Result{}, err
	}

	p.logger.Info("Game config published",
		"game_id", gameID,
		"version", snapshot.Version,
		"inserted", inserted,
		"published_at", snapshot.PublishedAt,
	)

	return Result{GameID: gameID, Version: snapshot.Version, Inserted: inserted}, nil
}
