package config

import (
	"io"
	"log/slog"
	"testing/fstest"

	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/paytable"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func float(v float64) *float64 {
	return &v
}

const testStrip = `H1,L1,S,L1,H1
L1,W,L1,H1,L1
S,H1,L1,W,S
L1,L1,H1,L1,L1
W,S,L1,S,H1
`

func testReelFS() fstest.MapFS {
	return fstest.MapFS{
		"BR0.csv": {Data: []byte(testStrip)},
		"FR0.csv": {Data: []byte(testStrip)},
	}
}

// validDefinition returns a small five-reel ways game that passes validation.
func validDefinition() *Definition {
	return &Definition{
		GameID:      "test_ways",
		WorkingName: "Test Ways",
		Wincap:      5000,
		WinType:     domain.WinTypeWays,
		RTP:         0.97,
		NumReels:    5,
		NumRows:     []int{3, 3, 3, 3, 3},
		PayGroups: paytable.RangeTable{
			{Range: paytable.Single(3), Symbol: "H1", Payout: 10},
			{Range: paytable.Single(4), Symbol: "H1", Payout: 50},
			{Range: paytable.Single(5), Symbol: "H1", Payout: 200},
			{Range: paytable.Single(3), Symbol: "L1", Payout: 0.8},
			{Range: paytable.Single(4), Symbol: "L1", Payout: 4},
			{Range: paytable.Single(5), Symbol: "L1", Payout: 20},
		},
		SpecialSymbols: domain.SpecialSymbols{
			domain.RoleWild:    {"W"},
			domain.RoleScatter: {"S"},
		},
		FreespinTriggers: map[domain.Phase]domain.TriggerTable{
			domain.PhaseBase: {{Scatters: 3, Spins: 10}, {Scatters: 4, Spins: 15}, {Scatters: 5, Spins: 20}},
			domain.PhaseFree: {{Scatters: 3, Spins: 5}, {Scatters: 4, Spins: 8}},
		},
		AnticipationTriggers: map[domain.Phase]int{
			domain.PhaseBase: 2,
			domain.PhaseFree: 2,
		},
		MaximumBoardMult: 256,
		ReelFiles:        map[string]string{"BR0": "BR0.csv", "FR0": "FR0.csv"},
		BetModes: []*domain.BetMode{
			{
				Name:   "base",
				Cost:   1,
				RTP:    0.97,
				MaxWin: 5000,
				Distributions: []*domain.Distribution{
					{Criteria: "wincap", Quota: 0.0005, WinCriteria: float(5000), Conditions: domain.Conditions{ForceWincap: true, ForceFreegame: true}},
					{
						Criteria: "freegame",
						Quota:    0.08,
						Conditions: domain.Conditions{
							ReelWeights: map[domain.Phase]map[string]float64{
								domain.PhaseBase: {"BR0": 1},
								domain.PhaseFree: {"FR0": 1},
							},
							ScatterTriggers: map[int]float64{3: 10, 4: 1},
							ForceFreegame:   true,
						},
					},
					{Criteria: "0", Quota: 0.45, WinCriteria: float(0)},
					{Criteria: "basegame", Quota: 0.4695},
				},
			},
		},
	}
}
