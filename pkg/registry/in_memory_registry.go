package registry

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/errors"
)

var _ Registry = (*InMemoryRegistry)(nil)

// entry guards a single game's construction.
type entry struct {
	once  sync.Once
	build BuildFunc
	cfg   *domain.GameConfig
	err   error
}

// InMemoryRegistry keeps one lazily built record per game ID.
// Registration takes the write lock; construction is serialized per game by sync.Once,
// so concurrent first requests observe exactly one build and the same pointer.
type InMemoryRegistry struct {
	entries map[string]*entry // "game-id" -> entry
	order   []string          // registration order
	mu      sync.RWMutex      // Protects entries and order
	logger  *slog.Logger
}

// NewInMemoryRegistry creates an empty registry.
func NewInMemoryRegistry(logger *slog.Logger) *InMemoryRegistry {
	return &InMemoryRegistry{
		entries: make(map[string]*entry),
		logger:  logger,
	}
}

// Register adds a game to the registry without building it.
func (r *InMemoryRegistry) Register(gameID string, build BuildFunc) error {
	if gameID == "" {
		return errors.ErrConfigInvalid("game ID cannot be empty")
	}
	if build == nil {
		return errors.ErrConfigInvalid("game %q has no build function", gameID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[gameID]; exists {
		return errors.ErrConfigInvalid("duplicate game ID: %s", gameID)
	}
	r.entries[gameID] = &entry{build: build}
	r.order = append(r.order, gameID)

	return nil
}

// Get returns the record for gameID, building it on first use.
func (r *InMemoryRegistry) Get(gameID string) (*domain.GameConfig, error) {
	r.mu.RLock()
	e, ok := r.entries[gameID]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.ErrGameNotFound(gameID)
	}

	e.once.Do(func() { r.construct(gameID, e) })

	return e.cfg, e.err
}

// construct runs the build function once and records its outcome.
func (r *InMemoryRegistry) construct(gameID string, e *entry) {
	cfg, err := runBuild(gameID, e.build)
	e.build = nil

	switch {
	case err != nil:
		e.err = fmt.Errorf("game %s unavailable: %w", gameID, err)
	case cfg == nil:
		e.err = errors.ErrConfigInvalid("game %s build returned no record", gameID)
	case cfg.GameID != gameID:
		e.err = errors.ErrConfigInvalid("game registered as %s built a record for %s", gameID, cfg.GameID)
	default:
		e.cfg = cfg
	}

	if e.err != nil {
		r.logger.Error("Game config construction failed",
			"game_id", gameID,
			"error", e.err,
		)
		return
	}
	r.logger.Info("Game config registered",
		"game_id", gameID,
		"bet_modes", len(cfg.BetModes),
	)
}

// runBuild calls build and turns a panic into a CONFIG_INVALID error.
func runBuild(gameID string, build BuildFunc) (cfg *domain.GameConfig, err error) {
	defer func() {
		if p := recover(); p != nil {
			cfg = nil
			err = errors.NewGameConfigError(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("building game %s panicked", gameID), fmt.Errorf("%v", p))
		}
	}()
	return build()
}

// MustGet returns the record for gameID or panics.
func (r *InMemoryRegistry) MustGet(gameID string) *domain.GameConfig {
	cfg, err := r.Get(gameID)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GameIDs returns the registered game IDs in registration order.
func (r *InMemoryRegistry) GameIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Warm builds every registered game.
func (r *InMemoryRegistry) Warm() error {
	var errs []error
	for _, gameID := range r.GameIDs() {
		if _, err := r.Get(gameID); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
