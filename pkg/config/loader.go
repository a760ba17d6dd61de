package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
)

// ConfigLoader loads a game definition from a YAML file and builds its record.
// It performs file reading, YAML parsing, reel-strip loading and validation.
type ConfigLoader struct {
	definitionPath string
	reels          fs.FS
	logger         *slog.Logger
}

// NewConfigLoader creates a new ConfigLoader instance.
//
// Parameters:
//   - definitionPath: Path to the game_config.yaml file
//   - reelFS: Reel-strip resource root; nil resolves strips on disk next to the file
//   - logger: Structured logger for operational logging
func NewConfigLoader(definitionPath string, reelFS fs.FS, logger *slog.Logger) *ConfigLoader {
	return &ConfigLoader{
		definitionPath: definitionPath,
		reels:          reelFS,
		logger:         logger,
	}
}

// LoadDefinition reads and parses the definition file without building it.
// Unknown YAML keys are rejected so that a misspelled option cannot be silently ignored.
func (l *ConfigLoader) LoadDefinition() (*Definition, error) {
	data, err := os.ReadFile(l.definitionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}
	return &def, nil
}

// LoadConfig loads the definition file and returns the validated record.
// This is a "fail fast" operation: an invalid definition yields no record.
func (l *ConfigLoader) LoadConfig() (*domain.GameConfig, error) {
	def, err := l.LoadDefinition()
	if err != nil {
		return nil, err
	}

	reelFS := l.reels
	if reelFS == nil {
		reelFS = os.DirFS(filepath.Join(filepath.Dir(l.definitionPath), def.ReelsDirOrDefault()))
	}

	cfg, err := NewBuilder(reelFS, l.logger).Build(def)
	if err != nil {
		return nil, fmt.Errorf("failed to build game config %q: %w", def.GameID, err)
	}

	l.logger.Info("Config loaded successfully",
		"game_id", cfg.GameID,
		"definition_path", l.definitionPath,
	)

	return cfg, nil
}
