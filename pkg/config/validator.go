package config

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/AccelByte/extend-slot-config-common/pkg/common"
	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/errors"
)

// QuotaTolerance is the allowed distance of a bet mode's quota sum from 1.
const QuotaTolerance = 1e-6

// MaxRTP is the exclusive upper bound of a target return-to-player fraction.
const MaxRTP = 2.0

var (
	one          = decimal.NewFromInt(1)
	quotaEpsilon = decimal.NewFromFloat(QuotaTolerance)
)

// Validator checks a constructed GameConfig against every record invariant.
// It runs at construction, never at simulation time.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate performs comprehensive validation of the record. It checks for:
// - Identity: game ID, RTP range, win type, wincap
// - Geometry: rows declared for every reel
// - Special symbols: known roles, no symbol in two roles, no pay symbol reused unless wild
// - Reel strips: reel count matches geometry, every stop is a declared symbol
// - Trigger tables: scatter counts strictly increasing, awarded spins non-decreasing
// - Board multiplier cap: positive and not below any mechanic's multiplier
// - Bet modes: RTP match, quota sum, strip references, forced wincap targets
//
// Returns an error describing the first failure encountered.
func (v *Validator) Validate(cfg *domain.GameConfig) error {
	if err := v.validateIdentity(cfg); err != nil {
		return err
	}
	if err := v.validateGeometry(cfg); err != nil {
		return err
	}
	if err := v.validateSpecialSymbols(cfg); err != nil {
		return err
	}
	if err := v.validateReels(cfg); err != nil {
		return err
	}
	if err := v.validateTriggers(cfg); err != nil {
		return err
	}
	if err := v.validateBoardMult(cfg); err != nil {
		return err
	}

	if len(cfg.BetModes) == 0 {
		return errors.ErrConfigInvalid("game %q must have at least one bet mode", cfg.GameID)
	}
	names := make(map[string]bool)
	for i, mode := range cfg.BetModes {
		if mode == nil {
			return errors.ErrConfigInvalid("bet mode %d is nil", i)
		}
		if names[mode.Name] {
			return errors.ErrConfigInvalid("duplicate bet mode name: %s", mode.Name)
		}
		names[mode.Name] = true

		if err := v.validateBetMode(cfg, mode); err != nil {
			return err
		}
	}

	return nil
}

// validateIdentity validates the record's identifying fields.
func (v *Validator) validateIdentity(cfg *domain.GameConfig) error {
	if cfg.GameID == "" {
		return errors.ErrConfigInvalid("game ID cannot be empty")
	}
	if !common.IsPositive(cfg.RTP) || cfg.RTP >= MaxRTP {
		return errors.ErrConfigInvalid("game %q: rtp must be in (0, %v), got %v", cfg.GameID, MaxRTP, cfg.RTP)
	}
	if !cfg.WinType.IsValid() {
		return errors.ErrConfigInvalid("game %q: invalid win type '%s' (must be 'cluster', 'ways', 'lines' or 'scatter')",
			cfg.GameID, cfg.WinType)
	}
	if !common.IsPositive(cfg.Wincap) {
		return errors.ErrConfigInvalid("game %q: wincap must be positive, got %v", cfg.GameID, cfg.Wincap)
	}
	if len(cfg.Paytable) == 0 {
		return errors.ErrSchema("game %q: paytable cannot be empty", cfg.GameID)
	}
	return nil
}

// validateGeometry validates reel and row counts.
func (v *Validator) validateGeometry(cfg *domain.GameConfig) error {
	if cfg.NumReels <= 0 {
		return errors.ErrConfigInvalid("game %q: num_reels must be positive", cfg.GameID)
	}
	if len(cfg.NumRows) != cfg.NumReels {
		return errors.ErrConfigInvalid("game %q: num_rows has %d entries, want one per reel (%d)",
			cfg.GameID, len(cfg.NumRows), cfg.NumReels)
	}
	for reel, rows := range cfg.NumRows {
		if rows <= 0 {
			return errors.ErrConfigInvalid("game %q: reel %d must have a positive row count, got %d",
				cfg.GameID, reel, rows)
		}
	}
	return nil
}

// validateSpecialSymbols validates special-symbol roles against the paytable.
func (v *Validator) validateSpecialSymbols(cfg *domain.GameConfig) error {
	paySymbols := make(map[string]bool)
	for k := range cfg.Paytable {
		paySymbols[k.Symbol] = true
	}

	roles := make([]string, 0, len(cfg.SpecialSymbols))
	for role := range cfg.SpecialSymbols {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)

	seen := make(map[string]domain.SymbolRole)
	for _, r := range roles {
		role := domain.SymbolRole(r)
		if !role.IsValid() {
			return errors.ErrSchema("game %q: invalid special symbol role '%s'", cfg.GameID, role)
		}
		for _, sym := range cfg.SpecialSymbols[role] {
			if sym == "" {
				return errors.ErrSchema("game %q: empty symbol in role '%s'", cfg.GameID, role)
			}
			if prev, ok := seen[sym]; ok {
				return errors.ErrSchema("game %q: symbol %q plays both '%s' and '%s'", cfg.GameID, sym, prev, role)
			}
			seen[sym] = role

			if paySymbols[sym] && role != domain.RoleWild {
				return errors.ErrSchema("game %q: %s symbol %q also appears in the paytable", cfg.GameID, role, sym)
			}
		}
	}
	return nil
}

// validateReels validates every loaded strip against geometry and declared symbols.
func (v *Validator) validateReels(cfg *domain.GameConfig) error {
	if len(cfg.Reels) == 0 {
		return errors.ErrConfigInvalid("game %q must declare at least one reel strip", cfg.GameID)
	}

	declared := cfg.DeclaredSymbols()
	for _, name := range cfg.ReelNames() {
		strip := cfg.Reels[name]
		if strip.NumReels() != cfg.NumReels {
			return errors.ErrSchema("game %q: reel strip %s has %d reels, want %d",
				cfg.GameID, name, strip.NumReels(), cfg.NumReels)
		}
		for reel := range strip {
			if strip.Len(reel) < cfg.NumRows[reel] {
				return errors.ErrSchema("game %q: reel strip %s reel %d has %d stops, fewer than its %d rows",
					cfg.GameID, name, reel, strip.Len(reel), cfg.NumRows[reel])
			}
			for stop, sym := range strip[reel] {
				if !declared[sym] {
					return errors.ErrSchema("game %q: reel strip %s reel %d stop %d has undeclared symbol %q",
						cfg.GameID, name, reel, stop, sym)
				}
			}
		}
	}
	return nil
}

// validateTriggers validates free-spin and anticipation tables.
func (v *Validator) validateTriggers(cfg *domain.GameConfig) error {
	if len(cfg.FreespinTriggers) > 0 && len(cfg.SpecialSymbols[domain.RoleScatter]) == 0 {
		return errors.ErrSchema("game %q: freespin triggers need a declared scatter symbol", cfg.GameID)
	}

	for _, phase := range sortedPhases(cfg.FreespinTriggers) {
		if !phase.IsValid() {
			return errors.ErrConfigInvalid("game %q: invalid freespin trigger phase '%s'", cfg.GameID, phase)
		}
		table := cfg.FreespinTriggers[phase]
		for i, step := range table {
			if step.Scatters <= 0 || step.Spins <= 0 {
				return errors.ErrConfigInvalid("game %q: %s trigger %d->%d must have positive scatters and spins",
					cfg.GameID, phase, step.Scatters, step.Spins)
			}
			if i == 0 {
				continue
			}
			prev := table[i-1]
			if step.Scatters <= prev.Scatters {
				return errors.ErrConfigInvalid("game %q: %s trigger scatter counts must strictly increase (%d after %d)",
					cfg.GameID, phase, step.Scatters, prev.Scatters)
			}
			if step.Spins < prev.Spins {
				return errors.ErrConfigInvalid("game %q: %s trigger awards %d spins for %d scatters, fewer than %d for %d",
					cfg.GameID, phase, step.Spins, step.Scatters, prev.Spins, prev.Scatters)
			}
		}
	}

	for phase, n := range cfg.AnticipationTriggers {
		if !phase.IsValid() {
			return errors.ErrConfigInvalid("game %q: invalid anticipation phase '%s'", cfg.GameID, phase)
		}
		if n <= 0 {
			return errors.ErrConfigInvalid("game %q: %s anticipation trigger must be positive", cfg.GameID, phase)
		}
	}
	return nil
}

// validateBoardMult validates the board multiplier cap against declared mechanics.
func (v *Validator) validateBoardMult(cfg *domain.GameConfig) error {
	if !common.IsPositive(cfg.MaximumBoardMult) {
		return errors.ErrConfigInvalid("game %q: maximum_board_mult must be positive, got %v", cfg.GameID, cfg.MaximumBoardMult)
	}
	for phase, values := range cfg.Multipliers {
		if !phase.IsValid() {
			return errors.ErrConfigInvalid("game %q: invalid multiplier phase '%s'", cfg.GameID, phase)
		}
		for _, m := range values {
			if !common.IsPositive(m) {
				return errors.ErrConfigInvalid("game %q: %s multiplier must be positive, got %v", cfg.GameID, phase, m)
			}
			if m > cfg.MaximumBoardMult {
				return errors.ErrConfigInvalid("game %q: %s multiplier %v exceeds maximum_board_mult %v",
					cfg.GameID, phase, m, cfg.MaximumBoardMult)
			}
		}
	}
	return nil
}

// validateBetMode validates a single bet mode and its distributions.
func (v *Validator) validateBetMode(cfg *domain.GameConfig, mode *domain.BetMode) error {
	if mode.Name == "" {
		return errors.ErrConfigInvalid("game %q: bet mode name cannot be empty", cfg.GameID)
	}
	if !common.IsPositive(mode.Cost) {
		return errors.ErrConfigInvalid("bet mode %q: cost must be positive, got %v", mode.Name, mode.Cost)
	}
	if !common.IsPositive(mode.MaxWin) {
		return errors.ErrConfigInvalid("bet mode %q: max_win must be positive, got %v", mode.Name, mode.MaxWin)
	}
	// Game RTP is already known finite; decimal.NewFromFloat panics on NaN and infinities.
	if !common.IsFinite(mode.RTP) || !decimal.NewFromFloat(mode.RTP).Equal(decimal.NewFromFloat(cfg.RTP)) {
		return errors.ErrConfigInvalid("bet mode %q: rtp %v does not match game rtp %v", mode.Name, mode.RTP, cfg.RTP)
	}
	if len(mode.Distributions) == 0 {
		return errors.ErrConfigInvalid("bet mode %q must have at least one distribution", mode.Name)
	}

	sum := decimal.Zero
	criteria := make(map[string]bool)
	for i, d := range mode.Distributions {
		if d == nil {
			return errors.ErrConfigInvalid("bet mode %q: distribution %d is nil", mode.Name, i)
		}
		if err := v.validateDistribution(cfg, mode, d); err != nil {
			return err
		}
		if criteria[d.Criteria] {
			return errors.ErrConfigInvalid("bet mode %q: duplicate distribution criteria %q", mode.Name, d.Criteria)
		}
		criteria[d.Criteria] = true
		sum = sum.Add(decimal.NewFromFloat(d.Quota))
	}

	if sum.Sub(one).Abs().GreaterThan(quotaEpsilon) {
		return errors.ErrConfigInvalid("bet mode %q: distribution quotas sum to %s, want 1", mode.Name, sum.String())
	}
	return nil
}

// validateDistribution validates a single distribution bucket.
func (v *Validator) validateDistribution(cfg *domain.GameConfig, mode *domain.BetMode, d *domain.Distribution) error {
	if d.Criteria == "" {
		return errors.ErrConfigInvalid("bet mode %q: distribution criteria cannot be empty", mode.Name)
	}
	if !common.IsFinite(d.Quota) || d.Quota < 0 || d.Quota > 1 {
		return errors.ErrConfigInvalid("bet mode %q: %q quota must be in [0,1], got %v", mode.Name, d.Criteria, d.Quota)
	}

	if d.WinCriteria != nil {
		if !common.IsFinite(*d.WinCriteria) || *d.WinCriteria < 0 {
			return errors.ErrConfigInvalid("bet mode %q: %q win_criteria must be a non-negative number, got %v",
				mode.Name, d.Criteria, *d.WinCriteria)
		}
		if *d.WinCriteria > mode.MaxWin {
			return errors.ErrConfigInvalid("bet mode %q: %q win_criteria %v exceeds max_win %v",
				mode.Name, d.Criteria, *d.WinCriteria, mode.MaxWin)
		}
	}
	if d.Conditions.ForceWincap {
		if d.WinCriteria == nil || *d.WinCriteria != mode.MaxWin {
			return errors.ErrConfigInvalid("bet mode %q: %q forces the wincap and must target max_win %v",
				mode.Name, d.Criteria, mode.MaxWin)
		}
	}

	for _, phase := range sortedPhases(d.Conditions.ReelWeights) {
		if !phase.IsValid() {
			return errors.ErrConfigInvalid("bet mode %q: %q has reel weights for invalid phase '%s'",
				mode.Name, d.Criteria, phase)
		}
		weights := d.Conditions.ReelWeights[phase]
		if len(weights) == 0 {
			return errors.ErrConfigInvalid("bet mode %q: %q has no %s reel weights", mode.Name, d.Criteria, phase)
		}
		names := make([]string, 0, len(weights))
		for name := range weights {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, ok := cfg.Reels[name]; !ok {
				return errors.ErrConfigInvalid("bet mode %q: %q references unknown reel strip %s",
					mode.Name, d.Criteria, name)
			}
			if !common.IsPositive(weights[name]) {
				return errors.ErrConfigInvalid("bet mode %q: %q weight for reel strip %s must be positive",
					mode.Name, d.Criteria, name)
			}
		}
	}

	base := cfg.FreespinTriggers[domain.PhaseBase]
	counts := make([]int, 0, len(d.Conditions.ScatterTriggers))
	for n := range d.Conditions.ScatterTriggers {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		if _, ok := base.Spins(n); !ok {
			return errors.ErrConfigInvalid("bet mode %q: %q scatter trigger %d is not in the basegame trigger table",
				mode.Name, d.Criteria, n)
		}
		if !common.IsPositive(d.Conditions.ScatterTriggers[n]) {
			return errors.ErrConfigInvalid("bet mode %q: %q scatter trigger %d weight must be positive",
				mode.Name, d.Criteria, n)
		}
	}

	return nil
}

func sortedPhases[V any](m map[domain.Phase]V) []domain.Phase {
	out := make([]domain.Phase, 0, len(m))
	for phase := range m {
		out = append(out, phase)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
