package games

import (
	"github.com/AccelByte/extend-slot-config-common/pkg/config"
	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/paytable"
)

// ClusterGameID identifies the 7x7 cluster-pays game.
const ClusterGameID = "0_0_cluster"

const clusterMaxWin = 5000

// ClusterDefinition returns the definition of the cluster-pays game.
func ClusterDefinition() *config.Definition {
	return &config.Definition{
		GameID:         ClusterGameID,
		ProviderNumber: 0,
		WorkingName:    "Production Cluster Slot",
		Wincap:         5000,
		WinType:        domain.WinTypeCluster,
		RTP:            0.97,
		NumReels:       7,
		NumRows:        []int{7, 7, 7, 7, 7, 7, 7},
		PayGroups:      clusterPaytable(),
		IncludePadding: true,
		SpecialSymbols: domain.SpecialSymbols{
			domain.RoleWild:    {"W"},
			domain.RoleScatter: {"S"},
		},
		FreespinTriggers: map[domain.Phase]domain.TriggerTable{
			domain.PhaseBase: {{Scatters: 5, Spins: 10}, {Scatters: 6, Spins: 12}, {Scatters: 7, Spins: 15}, {Scatters: 8, Spins: 20}},
			domain.PhaseFree: {{Scatters: 4, Spins: 5}, {Scatters: 5, Spins: 8}, {Scatters: 6, Spins: 10}, {Scatters: 7, Spins: 15}},
		},
		AnticipationTriggers: map[domain.Phase]int{
			domain.PhaseBase: 4,
			domain.PhaseFree: 3,
		},
		MaximumBoardMult: 512,
		// Declared free-game board multipliers. Only the 512 cap comes from the
		// game's math tables; the ladder gives the cap check something to bound.
		Multipliers: map[domain.Phase][]float64{
			domain.PhaseFree: {2, 4, 8, 16, 32, 64, 128, 256, 512},
		},
		ReelFiles: map[string]string{
			"BR0":  "BR0.csv",
			"FR0":  "FR0.csv",
			"WCAP": "WCAP.csv",
		},
		BetModes: []*domain.BetMode{
			{
				Name:       "base",
				Cost:       1,
				RTP:        0.97,
				MaxWin:     clusterMaxWin,
				IsFeature:  true,
				IsBuyBonus: false,
				Distributions: []*domain.Distribution{
					clusterWincap(0.0003),
					clusterFreegame(0.06),
					{
						Criteria:    "0",
						Quota:       0.50,
						WinCriteria: winCriteria(0),
						Conditions:  baseReelsOnly(),
					},
					// 0.44 in the math tables; lowered by the wincap share so the mode sums to 1.
					{
						Criteria:   "basegame",
						Quota:      0.4397,
						Conditions: baseReelsOnly(),
					},
				},
			},
			{
				Name:      "bonus",
				Cost:      200,
				RTP:       0.97,
				MaxWin:    clusterMaxWin,
				IsFeature: true,
				Distributions: []*domain.Distribution{
					clusterWincap(0.0003),
					clusterFreegame(0.9997), // tables list 0.06; takes the remainder
				},
			},
		},
	}
}

// clusterPaytable pays every symbol over the same four cluster-size tiers.
func clusterPaytable() paytable.RangeTable {
	tiers := []paytable.CountRange{
		paytable.Single(5),
		paytable.Span(6, 8),
		paytable.Span(9, 12),
		paytable.Span(13, 36),
	}
	payouts := []struct {
		symbol string
		pays   [4]float64
	}{
		{"H1", [4]float64{5.0, 12.5, 25.0, 60.0}},
		{"H2", [4]float64{2.0, 5.0, 10.0, 40.0}},
		{"H3", [4]float64{1.3, 3.2, 7.0, 30.0}},
		{"H4", [4]float64{1.0, 2.5, 6.0, 20.0}},
		{"L1", [4]float64{0.6, 1.5, 4.0, 10.0}},
		{"L2", [4]float64{0.4, 1.2, 3.5, 8.0}},
		{"L3", [4]float64{0.2, 0.8, 2.5, 5.0}},
		{"L4", [4]float64{0.1, 0.5, 1.5, 4.0}},
	}

	table := make(paytable.RangeTable, 0, len(tiers)*len(payouts))
	for _, p := range payouts {
		for i, tier := range tiers {
			table = append(table, paytable.PayGroup{Range: tier, Symbol: p.symbol, Payout: p.pays[i]})
		}
	}
	return table
}

func clusterWincap(quota float64) *domain.Distribution {
	return &domain.Distribution{
		Criteria:    "wincap",
		Quota:       quota,
		WinCriteria: winCriteria(clusterMaxWin),
		Conditions: domain.Conditions{
			ReelWeights: map[domain.Phase]map[string]float64{
				domain.PhaseBase: {"BR0": 1},
				domain.PhaseFree: {"FR0": 1, "WCAP": 5},
			},
			ScatterTriggers: map[int]float64{6: 1, 7: 1},
			ForceWincap:     true,
			ForceFreegame:   true,
		},
	}
}

func clusterFreegame(quota float64) *domain.Distribution {
	return &domain.Distribution{
		Criteria: "freegame",
		Quota:    quota,
		Conditions: domain.Conditions{
			ReelWeights: map[domain.Phase]map[string]float64{
				domain.PhaseBase: {"BR0": 1},
				domain.PhaseFree: {"FR0": 1},
			},
			ScatterTriggers: map[int]float64{5: 10, 6: 1},
			ForceFreegame:   true,
		},
	}
}

func baseReelsOnly() domain.Conditions {
	return domain.Conditions{
		ReelWeights: map[domain.Phase]map[string]float64{
			domain.PhaseBase: {"BR0": 1},
		},
	}
}

func winCriteria(v float64) *float64 {
	return &v
}
