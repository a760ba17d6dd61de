package config

import (
	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/paytable"
)

// DefaultReelsDir is the reel-strip directory used when a definition does not name one.
const DefaultReelsDir = "reels"

// Definition holds the static inputs of one game: the tables a game module writes
// by hand (or a game_config.yaml carries) before construction.
// It is turned into a validated domain.GameConfig by Builder.
type Definition struct {
	GameID         string         `yaml:"game_id"`
	ProviderNumber int            `yaml:"provider_number"`
	WorkingName    string         `yaml:"working_name"`
	Wincap         float64        `yaml:"wincap"`
	WinType        domain.WinType `yaml:"win_type"`
	RTP            float64        `yaml:"rtp"`

	NumReels int   `yaml:"num_reels"`
	NumRows  []int `yaml:"num_rows"`

	PayGroups      paytable.RangeTable   `yaml:"paytable"`
	IncludePadding bool                  `yaml:"include_padding"`
	SpecialSymbols domain.SpecialSymbols `yaml:"special_symbols"`

	FreespinTriggers     map[domain.Phase]domain.TriggerTable `yaml:"freespin_triggers"`
	AnticipationTriggers map[domain.Phase]int                 `yaml:"anticipation_triggers,omitempty"`

	MaximumBoardMult float64                    `yaml:"maximum_board_mult"`
	Multipliers      map[domain.Phase][]float64 `yaml:"multipliers,omitempty"`

	// ReelsDir is relative to the definition file; only used by Loader.
	ReelsDir  string            `yaml:"reels_dir,omitempty"`
	ReelFiles map[string]string `yaml:"reels"` // strip name -> resource path

	BetModes []*domain.BetMode `yaml:"bet_modes"`
}

// ReelsDirOrDefault returns ReelsDir, or DefaultReelsDir when unset.
func (d *Definition) ReelsDirOrDefault() string {
	if d.ReelsDir == "" {
		return DefaultReelsDir
	}
	return d.ReelsDir
}
