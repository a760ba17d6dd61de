package domain

import (
	"reflect"
	"testing"
)

func TestWinType_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		winType WinType
		want    bool
	}{
		{name: "cluster is valid", winType: WinTypeCluster, want: true},
		{name: "ways is valid", winType: WinTypeWays, want: true},
		{name: "lines is valid", winType: WinTypeLines, want: true},
		{name: "scatter is valid", winType: WinTypeScatter, want: true},
		{name: "empty is invalid", winType: "", want: false},
		{name: "unknown is invalid", winType: "megaways", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.winType.IsValid(); got != tt.want {
				t.Errorf("WinType.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhase_IsValid(t *testing.T) {
	tests := []struct {
		phase Phase
		want  bool
	}{
		{PhaseBase, true},
		{PhaseFree, true},
		{"bonusgame", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.phase.IsValid(); got != tt.want {
			t.Errorf("Phase(%q).IsValid() = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

func TestSymbolRole_IsValid(t *testing.T) {
	for _, role := range []SymbolRole{RoleWild, RoleScatter, RoleMultiplier} {
		if !role.IsValid() {
			t.Errorf("expected role %q to be valid", role)
		}
	}
	if SymbolRole("bonus").IsValid() {
		t.Error("expected role 'bonus' to be invalid")
	}
}

func TestPaytable(t *testing.T) {
	pt := Paytable{
		{Count: 5, Symbol: "H1"}: 5,
		{Count: 6, Symbol: "H1"}: 12.5,
		{Count: 7, Symbol: "H1"}: 12.5,
		{Count: 5, Symbol: "L1"}: 0.6,
	}

	t.Run("pay by exact count", func(t *testing.T) {
		if v, ok := pt.Pay("H1", 7); !ok || v != 12.5 {
			t.Errorf("Pay(H1, 7) = %v, %v; want 12.5, true", v, ok)
		}
		if _, ok := pt.Pay("H1", 8); ok {
			t.Error("Pay(H1, 8) should not pay")
		}
		if _, ok := pt.Pay("W", 5); ok {
			t.Error("Pay(W, 5) should not pay")
		}
	})

	t.Run("symbols and counts are sorted", func(t *testing.T) {
		if got := pt.Symbols(); !reflect.DeepEqual(got, []string{"H1", "L1"}) {
			t.Errorf("Symbols() = %v", got)
		}
		if got := pt.Counts("H1"); !reflect.DeepEqual(got, []int{5, 6, 7}) {
			t.Errorf("Counts(H1) = %v", got)
		}
		if got := pt.Counts("X"); len(got) != 0 {
			t.Errorf("Counts(X) = %v, want empty", got)
		}
	})
}

func TestSpecialSymbols(t *testing.T) {
	s := SpecialSymbols{
		RoleWild:    {"W"},
		RoleScatter: {"S", "S2"},
	}

	if role, ok := s.RoleOf("S2"); !ok || role != RoleScatter {
		t.Errorf("RoleOf(S2) = %q, %v; want scatter, true", role, ok)
	}
	if _, ok := s.RoleOf("H1"); ok {
		t.Error("RoleOf(H1) should report no role")
	}
	if !s.Has(RoleWild, "W") {
		t.Error("expected W to be wild")
	}
	if s.Has(RoleWild, "S") {
		t.Error("S must not be wild")
	}
}

func TestTriggerTable(t *testing.T) {
	table := TriggerTable{{Scatters: 5, Spins: 10}, {Scatters: 6, Spins: 12}, {Scatters: 7, Spins: 15}, {Scatters: 8, Spins: 20}}

	if spins, ok := table.Spins(6); !ok || spins != 12 {
		t.Errorf("Spins(6) = %d, %v; want 12, true", spins, ok)
	}
	if _, ok := table.Spins(4); ok {
		t.Error("Spins(4) should not trigger")
	}
	if got := table.MinScatters(); got != 5 {
		t.Errorf("MinScatters() = %d, want 5", got)
	}
	want := map[int]int{5: 10, 6: 12, 7: 15, 8: 20}
	if got := table.AsMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("AsMap() = %v, want %v", got, want)
	}
	if got := (TriggerTable{}).MinScatters(); got != 0 {
		t.Errorf("empty MinScatters() = %d, want 0", got)
	}
}

func TestReelStrip(t *testing.T) {
	strip := ReelStrip{
		{"H1", "L1", "S"},
		{"W", "L1", "L1", "H1"},
	}

	if strip.NumReels() != 2 {
		t.Errorf("NumReels() = %d, want 2", strip.NumReels())
	}
	if strip.Len(1) != 4 {
		t.Errorf("Len(1) = %d, want 4", strip.Len(1))
	}
	if strip.Len(2) != 0 || strip.Len(-1) != 0 {
		t.Error("Len() out of range should be 0")
	}
	if got := strip.Symbols(); !reflect.DeepEqual(got, []string{"H1", "L1", "S", "W"}) {
		t.Errorf("Symbols() = %v", got)
	}
}
