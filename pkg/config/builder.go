package config

import (
	"io/fs"
	"log/slog"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/paytable"
	"github.com/AccelByte/extend-slot-config-common/pkg/reels"
)

// Builder turns a Definition into a validated, immutable GameConfig.
type Builder struct {
	reels     fs.FS
	validator *Validator
	logger    *slog.Logger
}

// NewBuilder creates a new Builder.
//
// Parameters:
//   - reelFS: Resource root the definition's reel file paths resolve against
//   - logger: Structured logger for operational logging
func NewBuilder(reelFS fs.FS, logger *slog.Logger) *Builder {
	return &Builder{
		reels:     reelFS,
		validator: NewValidator(),
		logger:    logger,
	}
}

// Build constructs the record for def. It performs four steps:
// 1. Expand the range-keyed paytable into per-count payouts
// 2. Load every declared reel strip
// 3. Assemble the record (bet modes are deep-copied out of def)
// 4. Validate every invariant
//
// Any failure aborts construction and no record is returned.
func (b *Builder) Build(def *Definition) (*domain.GameConfig, error) {
	pt, err := paytable.Expand(def.PayGroups)
	if err != nil {
		return nil, err
	}

	strips, err := reels.LoadAll(b.reels, def.ReelFiles)
	if err != nil {
		return nil, err
	}

	cfg := &domain.GameConfig{
		GameID:               def.GameID,
		ProviderNumber:       def.ProviderNumber,
		WorkingName:          def.WorkingName,
		Wincap:               def.Wincap,
		WinType:              def.WinType,
		RTP:                  def.RTP,
		NumReels:             def.NumReels,
		NumRows:              append([]int(nil), def.NumRows...),
		Paytable:             pt,
		IncludePadding:       def.IncludePadding,
		SpecialSymbols:       cloneSpecialSymbols(def.SpecialSymbols),
		FreespinTriggers:     cloneTriggers(def.FreespinTriggers),
		AnticipationTriggers: cloneAnticipation(def.AnticipationTriggers),
		MaximumBoardMult:     def.MaximumBoardMult,
		Multipliers:          cloneMultipliers(def.Multipliers),
		Reels:                strips,
		BetModes:             cloneBetModes(def.BetModes),
	}

	if err := b.validator.Validate(cfg); err != nil {
		return nil, err
	}

	b.logger.Info("Game config built successfully",
		"game_id", cfg.GameID,
		"win_type", cfg.WinType,
		"rtp", cfg.RTP,
		"bet_modes", len(cfg.BetModes),
		"reel_strips", len(cfg.Reels),
		"paytable_entries", len(cfg.Paytable),
	)

	return cfg, nil
}

func cloneSpecialSymbols(in domain.SpecialSymbols) domain.SpecialSymbols {
	out := make(domain.SpecialSymbols, len(in))
	for role, symbols := range in {
		out[role] = append([]string(nil), symbols...)
	}
	return out
}

func cloneTriggers(in map[domain.Phase]domain.TriggerTable) map[domain.Phase]domain.TriggerTable {
	out := make(map[domain.Phase]domain.TriggerTable, len(in))
	for phase, table := range in {
		out[phase] = append(domain.TriggerTable(nil), table...)
	}
	return out
}

func cloneAnticipation(in map[domain.Phase]int) map[domain.Phase]int {
	out := make(map[domain.Phase]int, len(in))
	for phase, n := range in {
		out[phase] = n
	}
	return out
}

func cloneMultipliers(in map[domain.Phase][]float64) map[domain.Phase][]float64 {
	if in == nil {
		return nil
	}
	out := make(map[domain.Phase][]float64, len(in))
	for phase, values := range in {
		out[phase] = append([]float64(nil), values...)
	}
	return out
}

func cloneBetModes(in []*domain.BetMode) []*domain.BetMode {
	out := make([]*domain.BetMode, 0, len(in))
	for _, m := range in {
		if m == nil {
			out = append(out, nil)
			continue
		}
		mode := *m
		mode.Distributions = make([]*domain.Distribution, 0, len(m.Distributions))
		for _, d := range m.Distributions {
			if d == nil {
				mode.Distributions = append(mode.Distributions, nil)
				continue
			}
			dist := *d
			if d.WinCriteria != nil {
				v := *d.WinCriteria
				dist.WinCriteria = &v
			}
			dist.Conditions = cloneConditions(d.Conditions)
			mode.Distributions = append(mode.Distributions, &dist)
		}
		out = append(out, &mode)
	}
	return out
}

func cloneConditions(in domain.Conditions) domain.Conditions {
	out := in
	if in.ReelWeights != nil {
		out.ReelWeights = make(map[domain.Phase]map[string]float64, len(in.ReelWeights))
		for phase, weights := range in.ReelWeights {
			w := make(map[string]float64, len(weights))
			for name, v := range weights {
				w[name] = v
			}
			out.ReelWeights[phase] = w
		}
	}
	if in.ScatterTriggers != nil {
		out.ScatterTriggers = make(map[int]float64, len(in.ScatterTriggers))
		for n, v := range in.ScatterTriggers {
			out.ScatterTriggers[n] = v
		}
	}
	return out
}
