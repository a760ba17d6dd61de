package registry

import "github.com/AccelByte/extend-slot-config-common/pkg/domain"

// BuildFunc constructs the record of one game. It is called at most once per registration.
type BuildFunc func() (*domain.GameConfig, error)

// Registry maps game IDs to their configuration records.
// Each record is built lazily on first request, at most once per process,
// and shared by pointer with every caller. All lookups are thread-safe.
type Registry interface {
	// Register adds a game. The build function is not called until the game is requested.
	// Returns an error if the game ID is empty or already registered.
	Register(gameID string, build BuildFunc) error

	// Get returns the record for a game, building it on first use.
	// A construction error is cached: inputs are static, so a retry cannot succeed.
	// Returns GAME_NOT_FOUND if the game is not registered.
	Get(gameID string) (*domain.GameConfig, error)

	// MustGet is Get for startup code; it panics on error.
	MustGet(gameID string) *domain.GameConfig

	// GameIDs returns the registered game IDs in registration order.
	GameIDs() []string

	// Warm builds every registered game and reports every construction failure.
	// Call it during startup, before worker goroutines begin reading.
	Warm() error
}
