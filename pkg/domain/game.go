package domain

import (
	"sort"
	"time"
)

// Conditions are the recognized options of a distribution bucket.
type Conditions struct {
	// ReelWeights selects reel strips per phase by relative weight (strip name -> weight).
	ReelWeights map[Phase]map[string]float64 `json:"reel_weights,omitempty" yaml:"reel_weights,omitempty"`

	// ScatterTriggers weights the scatter count forced when the bucket enters the free game.
	ScatterTriggers map[int]float64 `json:"scatter_triggers,omitempty" yaml:"scatter_triggers,omitempty"`

	// ForceWincap clips or forces the outcome to the mode's max win.
	ForceWincap bool `json:"force_wincap" yaml:"force_wincap"`

	// ForceFreegame makes the outcome enter the free game regardless of natural triggers.
	ForceFreegame bool `json:"force_freegame" yaml:"force_freegame"`
}

// ReelNames returns every strip name referenced by the reel weights, sorted.
func (c Conditions) ReelNames() []string {
	seen := make(map[string]bool)
	for _, weights := range c.ReelWeights {
		for name := range weights {
			seen[name] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Distribution is one weighted outcome-generation bucket of a bet mode.
type Distribution struct {
	Criteria    string     `json:"criteria" yaml:"criteria"`                             // "wincap", "freegame", "basegame", "0", ...
	Quota       float64    `json:"quota" yaml:"quota"`                                   // Probability mass in [0,1]
	WinCriteria *float64   `json:"win_criteria,omitempty" yaml:"win_criteria,omitempty"` // Forced payout for the bucket, if any
	Conditions  Conditions `json:"conditions" yaml:"conditions"`
}

// HasWinCriteria returns true if the bucket forces a payout value.
func (d *Distribution) HasWinCriteria() bool {
	return d.WinCriteria != nil
}

// BetMode is a purchasable way to play a game: a stake multiplier and its outcome buckets.
type BetMode struct {
	Name              string          `json:"name" yaml:"name"`
	Cost              float64         `json:"cost" yaml:"cost"`
	RTP               float64         `json:"rtp" yaml:"rtp"`
	MaxWin            float64         `json:"max_win" yaml:"max_win"`
	AutoCloseDisabled bool            `json:"auto_close_disabled" yaml:"auto_close_disabled"`
	IsFeature         bool            `json:"is_feature" yaml:"is_feature"`
	IsBuyBonus        bool            `json:"is_buybonus" yaml:"is_buybonus"`
	Distributions     []*Distribution `json:"distributions" yaml:"distributions"`
}

// QuotaSum returns the float sum of all distribution quotas.
// Validation uses an exact decimal sum; this is for display and quick checks.
func (m *BetMode) QuotaSum() float64 {
	sum := 0.0
	for _, d := range m.Distributions {
		sum += d.Quota
	}
	return sum
}

// DistributionByCriteria returns the first distribution with the given criteria, or nil.
func (m *BetMode) DistributionByCriteria(criteria string) *Distribution {
	for _, d := range m.Distributions {
		if d.Criteria == criteria {
			return d
		}
	}
	return nil
}

// CumulativeQuotas returns the running quota totals in distribution order.
// The last element is the mode's quota sum.
func (m *BetMode) CumulativeQuotas() []float64 {
	out := make([]float64, len(m.Distributions))
	acc := 0.0
	for i, d := range m.Distributions {
		acc += d.Quota
		out[i] = acc
	}
	return out
}

// SelectDistribution picks the bucket whose cumulative quota interval contains u.
// u is expected in [0,1); values at or above the total select the last bucket.
func (m *BetMode) SelectDistribution(u float64) *Distribution {
	if len(m.Distributions) == 0 {
		return nil
	}
	cum := m.CumulativeQuotas()
	i := sort.Search(len(cum), func(i int) bool { return u < cum[i] })
	if i >= len(cum) {
		i = len(cum) - 1
	}
	return m.Distributions[i]
}

// GameConfig is the per-game static record consumed by the outcome engine.
// It is built once, validated at construction and must not be mutated afterwards;
// readers share it by pointer without locking.
type GameConfig struct {
	GameID         string
	ProviderNumber int
	WorkingName    string
	Wincap         float64
	WinType        WinType
	RTP            float64

	NumReels int
	NumRows  []int // rows per reel, len == NumReels

	Paytable       Paytable
	IncludePadding bool
	SpecialSymbols SpecialSymbols

	FreespinTriggers     map[Phase]TriggerTable
	AnticipationTriggers map[Phase]int

	MaximumBoardMult float64
	Multipliers      map[Phase][]float64 // multiplier values an in-game mechanic can apply, if any

	Reels    map[string]ReelStrip
	BetModes []*BetMode
}

// BetModeByName returns the bet mode with the given name, or nil.
func (g *GameConfig) BetModeByName(name string) *BetMode {
	for _, m := range g.BetModes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// BetModeByCost returns the first bet mode with the given stake multiplier, or nil.
func (g *GameConfig) BetModeByCost(cost float64) *BetMode {
	for _, m := range g.BetModes {
		if m.Cost == cost {
			return m
		}
	}
	return nil
}

// ReelNames returns the loaded strip names, sorted.
func (g *GameConfig) ReelNames() []string {
	out := make([]string, 0, len(g.Reels))
	for name := range g.Reels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DeclaredSymbols returns the set of pay symbols and special symbols.
func (g *GameConfig) DeclaredSymbols() map[string]bool {
	out := make(map[string]bool)
	for k := range g.Paytable {
		out[k.Symbol] = true
	}
	for _, symbols := range g.SpecialSymbols {
		for _, s := range symbols {
			out[s] = true
		}
	}
	return out
}

// Snapshot is a published, serialized game config.
type Snapshot struct {
	GameID      string    `json:"game_id"`
	Version     string    `json:"version"` // hex sha256 of Body
	RTP         float64   `json:"rtp"`
	BetModes    []string  `json:"bet_modes"`
	Body        []byte    `json:"-"`
	PublishedAt time.Time `json:"published_at"`
}
