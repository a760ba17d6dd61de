package games

import (
	"github.com/AccelByte/extend-slot-config-common/pkg/config"
	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/paytable"
)

// WaysGameID identifies the 5x3 ways-pays game.
const WaysGameID = "0_0_ways"

const waysMaxWin = 5000

// WaysDefinition returns the definition of the ways-pays game.
func WaysDefinition() *config.Definition {
	return &config.Definition{
		GameID:         WaysGameID,
		ProviderNumber: 0,
		WorkingName:    "Production Ways Slot",
		Wincap:         5000,
		WinType:        domain.WinTypeWays,
		RTP:            0.97,
		NumReels:       5,
		NumRows:        []int{3, 3, 3, 3, 3},
		PayGroups:      waysPaytable(),
		SpecialSymbols: domain.SpecialSymbols{
			domain.RoleWild:    {"W"},
			domain.RoleScatter: {"S"},
		},
		FreespinTriggers: map[domain.Phase]domain.TriggerTable{
			domain.PhaseBase: {{Scatters: 3, Spins: 10}, {Scatters: 4, Spins: 15}, {Scatters: 5, Spins: 20}},
			domain.PhaseFree: {{Scatters: 3, Spins: 5}, {Scatters: 4, Spins: 8}},
		},
		MaximumBoardMult: 256,
		ReelFiles: map[string]string{
			"BR0": "BR0.csv",
			"FR0": "FR0.csv",
		},
		BetModes: []*domain.BetMode{
			{
				Name:   "base",
				Cost:   1,
				RTP:    0.97,
				MaxWin: waysMaxWin,
				Distributions: []*domain.Distribution{
					waysWincap(0.0005),
					waysFreegame(0.08),
					{Criteria: "0", Quota: 0.45, WinCriteria: winCriteria(0)},
					// 0.47 in the math tables; lowered by the wincap share so the mode sums to 1.
					{Criteria: "basegame", Quota: 0.4695},
				},
			},
			{
				Name:   "bonus",
				Cost:   100,
				RTP:    0.97,
				MaxWin: waysMaxWin,
				Distributions: []*domain.Distribution{
					waysWincap(0.001),
					waysFreegame(0.999), // tables list 0.1; takes the remainder
				},
			},
		},
	}
}

func waysPaytable() paytable.RangeTable {
	payouts := []struct {
		symbol string
		pays   [3]float64 // 3, 4 and 5 of a kind
	}{
		{"H1", [3]float64{10, 50, 200}},
		{"H2", [3]float64{5, 25, 100}},
		{"H3", [3]float64{2.5, 12, 50}},
		{"L1", [3]float64{0.8, 4, 20}},
		{"L2", [3]float64{0.6, 3, 15}},
		{"L3", [3]float64{0.4, 2, 10}},
	}

	table := make(paytable.RangeTable, 0, 3*len(payouts))
	for _, p := range payouts {
		for i, pay := range p.pays {
			table = append(table, paytable.PayGroup{Range: paytable.Single(3 + i), Symbol: p.symbol, Payout: pay})
		}
	}
	return table
}

func waysWincap(quota float64) *domain.Distribution {
	return &domain.Distribution{
		Criteria:    "wincap",
		Quota:       quota,
		WinCriteria: winCriteria(waysMaxWin),
		Conditions:  domain.Conditions{ForceWincap: true},
	}
}

func waysFreegame(quota float64) *domain.Distribution {
	return &domain.Distribution{
		Criteria:   "freegame",
		Quota:      quota,
		Conditions: domain.Conditions{ForceFreegame: true},
	}
}
