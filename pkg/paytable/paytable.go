// Package paytable converts between range-keyed payout tables, as game designers
// write them, and the expanded per-count form the outcome engine queries.
package paytable

import (
	"sort"

	"github.com/AccelByte/extend-slot-config-common/pkg/common"
	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/errors"
)

// CountRange is an inclusive range of symbol counts.
type CountRange struct {
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
}

// Single returns the range holding exactly n.
func Single(n int) CountRange {
	return CountRange{Low: n, High: n}
}

// Span returns the inclusive range low..high.
func Span(low, high int) CountRange {
	return CountRange{Low: low, High: high}
}

// Contains reports whether n is inside the range.
func (r CountRange) Contains(n int) bool {
	return n >= r.Low && n <= r.High
}

// PayGroup pays Payout for any count of Symbol inside Range.
type PayGroup struct {
	Range  CountRange `json:"range" yaml:"range"`
	Symbol string     `json:"symbol" yaml:"symbol"`
	Payout float64    `json:"payout" yaml:"payout"`
}

// RangeTable is a range-keyed paytable.
type RangeTable []PayGroup

// BySymbol returns the groups of each symbol, sorted by range start.
func (t RangeTable) BySymbol() map[string][]PayGroup {
	out := make(map[string][]PayGroup)
	for _, g := range t {
		out[g.Symbol] = append(out[g.Symbol], g)
	}
	for _, groups := range out {
		sort.Slice(groups, func(i, j int) bool { return groups[i].Range.Low < groups[j].Range.Low })
	}
	return out
}

// Expand maps every count of every range to its payout.
//
// (5,5)->m1, (6,8)->m2 expands to {5:m1, 6:m2, 7:m2, 8:m2}.
// Each symbol's ranges must partition a contiguous span of counts and the
// payout must not decrease as the count grows.
func Expand(table RangeTable) (domain.Paytable, error) {
	out := make(domain.Paytable)
	bySymbol := table.BySymbol()

	symbols := make([]string, 0, len(bySymbol))
	for symbol := range bySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		groups := bySymbol[symbol]
		if symbol == "" {
			return nil, errors.ErrSchema("paytable entry has an empty symbol")
		}

		for i, g := range groups {
			if g.Range.Low < 1 {
				return nil, errors.ErrSchema("symbol %q: count range (%d,%d) must start at 1 or above",
					symbol, g.Range.Low, g.Range.High)
			}
			if g.Range.Low > g.Range.High {
				return nil, errors.ErrSchema("symbol %q: count range (%d,%d) has low > high",
					symbol, g.Range.Low, g.Range.High)
			}
			if !common.IsPositive(g.Payout) {
				return nil, errors.ErrSchema("symbol %q: payout for (%d,%d) must be positive, got %v",
					symbol, g.Range.Low, g.Range.High, g.Payout)
			}

			if i > 0 {
				prev := groups[i-1]
				switch {
				case g.Range.Low <= prev.Range.High:
					return nil, errors.ErrSchema("symbol %q: count range (%d,%d) overlaps (%d,%d)",
						symbol, g.Range.Low, g.Range.High, prev.Range.Low, prev.Range.High)
				case g.Range.Low > prev.Range.High+1:
					return nil, errors.ErrSchema("symbol %q: gap between count ranges (%d,%d) and (%d,%d)",
						symbol, prev.Range.Low, prev.Range.High, g.Range.Low, g.Range.High)
				}
				if g.Payout < prev.Payout {
					return nil, errors.ErrSchema("symbol %q: payout decreases from %v to %v at count %d",
						symbol, prev.Payout, g.Payout, g.Range.Low)
				}
			}

			for n := g.Range.Low; n <= g.Range.High; n++ {
				out[domain.PayKey{Count: n, Symbol: symbol}] = g.Payout
			}
		}
	}

	return out, nil
}

// Collapse merges contiguous counts with equal payouts back into ranges.
// The result is sorted by symbol, then by range start.
func Collapse(pt domain.Paytable) RangeTable {
	var out RangeTable

	for _, symbol := range pt.Symbols() {
		var cur *PayGroup
		for _, n := range pt.Counts(symbol) {
			payout := pt[domain.PayKey{Count: n, Symbol: symbol}]
			if cur != nil && cur.Range.High+1 == n && cur.Payout == payout {
				cur.Range.High = n
				continue
			}
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &PayGroup{Range: Single(n), Symbol: symbol, Payout: payout}
		}
		if cur != nil {
			out = append(out, *cur)
		}
	}

	return out
}

// MaxPayout returns the largest payout in the table.
func MaxPayout(pt domain.Paytable) float64 {
	top := 0.0
	for _, v := range pt {
		top = max(top, v)
	}
	return top
}
