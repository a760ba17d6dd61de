package domain

import (
	"sort"
)

// WinType selects the win-evaluation strategy the outcome engine applies to a game.
type WinType string

const (
	// WinTypeCluster pays groups of adjacent matching symbols (e.g. 5+ connected cells).
	WinTypeCluster WinType = "cluster"

	// WinTypeWays pays matching symbols on consecutive reels from the left, any row.
	WinTypeWays WinType = "ways"

	// WinTypeLines pays matches along fixed paylines.
	WinTypeLines WinType = "lines"

	// WinTypeScatter pays a symbol count anywhere on the board.
	WinTypeScatter WinType = "scatter"
)

// IsValid returns true if the win type is a known evaluation strategy.
func (w WinType) IsValid() bool {
	switch w {
	case WinTypeCluster, WinTypeWays, WinTypeLines, WinTypeScatter:
		return true
	default:
		return false
	}
}

// Phase identifies a game phase. Trigger tables and reel weights are keyed by phase.
type Phase string

const (
	// PhaseBase is the regular paid spin.
	PhaseBase Phase = "basegame"

	// PhaseFree is the free-spin feature entered from a scatter trigger or a forced bucket.
	PhaseFree Phase = "freegame"
)

// IsValid returns true if the phase is a known game phase.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseBase, PhaseFree:
		return true
	default:
		return false
	}
}

// SymbolRole names the special behaviour attached to a symbol code.
type SymbolRole string

const (
	// RoleWild substitutes for pay symbols. A wild may also carry its own payouts.
	RoleWild SymbolRole = "wild"

	// RoleScatter counts anywhere on the board and drives free-spin triggers.
	RoleScatter SymbolRole = "scatter"

	// RoleMultiplier applies a multiplier to wins it takes part in.
	RoleMultiplier SymbolRole = "multiplier"
)

// IsValid returns true if the role is a known special-symbol role.
func (r SymbolRole) IsValid() bool {
	switch r {
	case RoleWild, RoleScatter, RoleMultiplier:
		return true
	default:
		return false
	}
}

// PayKey addresses one entry of an expanded paytable.
type PayKey struct {
	Count  int
	Symbol string
}

// Paytable maps (count, symbol) to a payout multiplier of the stake.
// This is the expanded form: every individual count of a range is present.
type Paytable map[PayKey]float64

// Pay returns the payout for exactly count symbols.
func (p Paytable) Pay(symbol string, count int) (float64, bool) {
	v, ok := p[PayKey{Count: count, Symbol: symbol}]
	return v, ok
}

// Symbols returns the pay symbols in sorted order.
func (p Paytable) Symbols() []string {
	seen := make(map[string]bool)
	for k := range p {
		seen[k.Symbol] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Counts returns the paying counts of symbol in ascending order.
func (p Paytable) Counts(symbol string) []int {
	var out []int
	for k := range p {
		if k.Symbol == symbol {
			out = append(out, k.Count)
		}
	}
	sort.Ints(out)
	return out
}

// SpecialSymbols maps a role to the symbol codes that play it.
type SpecialSymbols map[SymbolRole][]string

// RoleOf returns the role of symbol, if any.
func (s SpecialSymbols) RoleOf(symbol string) (SymbolRole, bool) {
	for role, symbols := range s {
		for _, sym := range symbols {
			if sym == symbol {
				return role, true
			}
		}
	}
	return "", false
}

// Has reports whether symbol plays role.
func (s SpecialSymbols) Has(role SymbolRole, symbol string) bool {
	for _, sym := range s[role] {
		if sym == symbol {
			return true
		}
	}
	return false
}

// TriggerStep awards Spins free spins for exactly Scatters scatter symbols.
type TriggerStep struct {
	Scatters int `json:"scatters" yaml:"scatters"`
	Spins    int `json:"spins" yaml:"spins"`
}

// TriggerTable is ordered by scatter count.
type TriggerTable []TriggerStep

// Spins returns the free spins awarded for scatters.
func (t TriggerTable) Spins(scatters int) (int, bool) {
	for _, step := range t {
		if step.Scatters == scatters {
			return step.Spins, true
		}
	}
	return 0, false
}

// AsMap returns the table as scatter count -> awarded spins.
func (t TriggerTable) AsMap() map[int]int {
	out := make(map[int]int, len(t))
	for _, step := range t {
		out[step.Scatters] = step.Spins
	}
	return out
}

// MinScatters returns the smallest triggering scatter count, or 0 for an empty table.
func (t TriggerTable) MinScatters() int {
	if len(t) == 0 {
		return 0
	}
	return t[0].Scatters
}

// ReelStrip holds the stops of every reel, indexed [reel][stop].
type ReelStrip [][]string

// NumReels returns the number of reels in the strip set.
func (r ReelStrip) NumReels() int {
	return len(r)
}

// Len returns the number of stops on reel.
func (r ReelStrip) Len(reel int) int {
	if reel < 0 || reel >= len(r) {
		return 0
	}
	return len(r[reel])
}

// Symbols returns every distinct symbol on the strip set, sorted.
func (r ReelStrip) Symbols() []string {
	seen := make(map[string]bool)
	for _, reel := range r {
		for _, sym := range reel {
			seen[sym] = true
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
