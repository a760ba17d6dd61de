package main

import (
	"github.com/AccelByte/extend-slot-config-common/pkg/domain"
	"github.com/AccelByte/extend-slot-config-common/pkg/paytable"
	"github.com/AccelByte/extend-slot-config-common/pkg/publish"
)

// gameSummary is the output of show.
type gameSummary struct {
	GameID           string                       `json:"game_id"`
	WorkingName      string                       `json:"working_name"`
	WinType          domain.WinType               `json:"win_type"`
	RTP              float64                      `json:"rtp"`
	Wincap           float64                      `json:"wincap"`
	NumReels         int                          `json:"num_reels"`
	NumRows          []int                        `json:"num_rows"`
	PaytableEntries  int                          `json:"paytable_entries"`
	MaxPayout        float64                      `json:"max_payout"`
	MaximumBoardMult float64                      `json:"maximum_board_mult"`
	FreespinTriggers map[domain.Phase]map[int]int `json:"freespin_triggers"`
	ReelStrips       map[string][]int             `json:"reel_strips"` // strip name -> stops per reel
	BetModes         []betModeSummary             `json:"bet_modes"`
	Version          string                       `json:"version"`
}

type betModeSummary struct {
	Name          string                `json:"name"`
	Cost          float64               `json:"cost"`
	MaxWin        float64               `json:"max_win"`
	QuotaSum      float64               `json:"quota_sum"`
	Distributions []distributionSummary `json:"distributions"`
}

type distributionSummary struct {
	Criteria    string   `json:"criteria"`
	Quota       float64  `json:"quota"`
	WinCriteria *float64 `json:"win_criteria,omitempty"`
}

func summarize(cfg *domain.GameConfig) (*gameSummary, error) {
	_, version, err := publish.Encode(cfg)
	if err != nil {
		return nil, err
	}

	s := &gameSummary{
		GameID:           cfg.GameID,
		WorkingName:      cfg.WorkingName,
		WinType:          cfg.WinType,
		RTP:              cfg.RTP,
		Wincap:           cfg.Wincap,
		NumReels:         cfg.NumReels,
		NumRows:          cfg.NumRows,
		PaytableEntries:  len(cfg.Paytable),
		MaxPayout:        paytable.MaxPayout(cfg.Paytable),
		MaximumBoardMult: cfg.MaximumBoardMult,
		FreespinTriggers: make(map[domain.Phase]map[int]int, len(cfg.FreespinTriggers)),
		ReelStrips:       make(map[string][]int, len(cfg.Reels)),
		Version:          version,
	}

	for phase, table := range cfg.FreespinTriggers {
		s.FreespinTriggers[phase] = table.AsMap()
	}
	for name, strip := range cfg.Reels {
		stops := make([]int, strip.NumReels())
		for i := range stops {
			stops[i] = strip.Len(i)
		}
		s.ReelStrips[name] = stops
	}
	for _, m := range cfg.BetModes {
		mode := betModeSummary{
			Name:     m.Name,
			Cost:     m.Cost,
			MaxWin:   m.MaxWin,
			QuotaSum: m.QuotaSum(),
		}
		for _, d := range m.Distributions {
			mode.Distributions = append(mode.Distributions, distributionSummary{
				Criteria:    d.Criteria,
				Quota:       d.Quota,
				WinCriteria: d.WinCriteria,
			})
		}
		s.BetModes = append(s.BetModes, mode)
	}

	return s, nil
}
