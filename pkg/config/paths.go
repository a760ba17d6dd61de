package config

import "path/filepath"

// DefinitionFile is the file name of an external game definition.
const DefinitionFile = "game_config.yaml"

// Paths locates game resources under a base directory laid out as
// <base>/games/<game_id>/{game_config.yaml, reels/*.csv}.
type Paths struct {
	BaseDir string
}

// GameDir returns the directory of a game.
func (p Paths) GameDir(gameID string) string {
	return filepath.Join(p.BaseDir, "games", gameID)
}

// DefinitionPath returns the path of a game's definition file.
func (p Paths) DefinitionPath(gameID string) string {
	return filepath.Join(p.GameDir(gameID), DefinitionFile)
}

// ReelsPath returns the directory holding a game's reel strips.
func (p Paths) ReelsPath(gameID string) string {
	return filepath.Join(p.GameDir(gameID), DefaultReelsDir)
}
