// Package games holds the built-in game definitions and their embedded reel strips.
package games

import (
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"sync"

	"github.com/AccelByte/extend-slot-config-common/pkg/config"
	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/errors"
	"github.com/AccelByte/extend-slot-config-common/pkg/registry"
)

//go:embed reels
var reelFiles embed.FS

// builtin pairs a game ID with the function producing its definition.
type builtin struct {
	gameID     string
	definition func() *config.Definition
}

var builtins = []builtin{
	{gameID: ClusterGameID, definition: ClusterDefinition},
	{gameID: WaysGameID, definition: WaysDefinition},
}

// GameIDs returns the IDs of the built-in games.
func GameIDs() []string {
	ids := make([]string, 0, len(builtins))
	for _, b := range builtins {
		ids = append(ids, b.gameID)
	}
	return ids
}

// Definition returns a fresh copy of the named built-in definition.
func Definition(gameID string) (*config.Definition, error) {
	for _, b := range builtins {
		if b.gameID == gameID {
			return b.definition(), nil
		}
	}
	return nil, errors.ErrGameNotFound(gameID)
}

// ReelFS returns the embedded reel-strip directory of a built-in game.
func ReelFS(gameID string) (fs.FS, error) {
	return fs.Sub(reelFiles, path.Join("reels", gameID))
}

// Build constructs a definition against its embedded reel strips.
func Build(def *config.Definition, logger *slog.Logger) (*domain.GameConfig, error) {
	reelFS, err := ReelFS(def.GameID)
	if err != nil {
		return nil, errors.ErrResourceNotFound("reels/"+def.GameID, err)
	}
	return config.NewBuilder(reelFS, logger).Build(def)
}

// RegisterAll adds every built-in game to reg except those named in skip.
// Nothing is built until requested.
func RegisterAll(reg registry.Registry, logger *slog.Logger, skip ...string) error {
	skipped := make(map[string]bool, len(skip))
	for _, id := range skip {
		skipped[id] = true
	}

	for _, b := range builtins {
		if skipped[b.gameID] {
			continue
		}
		definition := b.definition
		if err := reg.Register(b.gameID, func() (*domain.GameConfig, error) {
			return Build(definition(), logger)
		}); err != nil {
			return err
		}
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *registry.InMemoryRegistry
)

// Default returns the process-wide registry of built-in games.
// The logger of the first call is used for every later construction.
func Default(logger *slog.Logger) registry.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = registry.NewInMemoryRegistry(logger)
		if err := RegisterAll(defaultRegistry, logger); err != nil {
			// Built-in IDs are constants; a failure here is a programming error.
			panic(err)
		}
	})
	return defaultRegistry
}
