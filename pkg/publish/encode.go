// Package publish serializes validated game configs and stores them as versioned snapshots.
package publish

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/paytable"
)

// document is the wire form of a GameConfig. The paytable is written back as ranges;
// map keys are sorted by encoding/json, so equal records encode to equal bytes.
type document struct {
	GameID               string                               `json:"game_id"`
	ProviderNumber       int                                  `json:"provider_number"`
	WorkingName          string                               `json:"working_name"`
	Wincap               float64                              `json:"wincap"`
	WinType              domain.WinType                       `json:"win_type"`
	RTP                  float64                              `json:"rtp"`
	NumReels             int                                  `json:"num_reels"`
	NumRows              []int                                `json:"num_rows"`
	Paytable             paytable.RangeTable                  `json:"paytable"`
	IncludePadding       bool                                 `json:"include_padding"`
	SpecialSymbols       domain.SpecialSymbols                `json:"special_symbols"`
	FreespinTriggers     map[domain.Phase]domain.TriggerTable `json:"freespin_triggers"`
	AnticipationTriggers map[domain.Phase]int                 `json:"anticipation_triggers,omitempty"`
	MaximumBoardMult     float64                              `json:"maximum_board_mult"`
	Multipliers          map[domain.Phase][]float64           `json:"multipliers,omitempty"`
	Reels                map[string]domain.ReelStrip          `json:"reels"`
	BetModes             []*domain.BetMode                    `json:"bet_modes"`
}

// Encode returns the canonical JSON body of cfg and its version, the hex sha256 of the body.
func Encode(cfg *domain.GameConfig) ([]byte, string, error) {
	doc := document{
		GameID:               cfg.GameID,
		ProviderNumber:       cfg.ProviderNumber,
		WorkingName:          cfg.WorkingName,
		Wincap:               cfg.Wincap,
		WinType:              cfg.WinType,
		RTP:                  cfg.RTP,
		NumReels:             cfg.NumReels,
		NumRows:              cfg.NumRows,
		Paytable:             paytable.Collapse(cfg.Paytable),
		IncludePadding:       cfg.IncludePadding,
		SpecialSymbols:       cfg.SpecialSymbols,
		FreespinTriggers:     cfg.FreespinTriggers,
		AnticipationTriggers: cfg.AnticipationTriggers,
		MaximumBoardMult:     cfg.MaximumBoardMult,
		Multipliers:          cfg.Multipliers,
		Reels:                cfg.Reels,
		BetModes:             cfg.BetModes,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode game config %q: %w", cfg.GameID, err)
	}

	sum := sha256.Sum256(body)
	return body, hex.EncodeToString(sum[:]), nil
}

// NewSnapshot encodes cfg into an unpublished snapshot.
func NewSnapshot(cfg *domain.GameConfig) (*domain.Snapshot, error) {
	body, version, err := Encode(cfg)
	if err != nil {
		return nil, err
	}

	modes := make([]string, 0, len(cfg.BetModes))
	for _, m := range cfg.BetModes {
		modes = append(modes, m.Name)
	}

	return &domain.Snapshot{
		GameID:   cfg.GameID,
		Version:  version,
		RTP:      cfg.RTP,
		BetModes: modes,
		Body:     body,
	}, nil
}
