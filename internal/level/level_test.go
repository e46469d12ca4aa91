package level

import "testing"

func TestComputeBoundaries(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 1},
		{24, 1},
		{25, 2},
		{99, 2},
		{100, 3},
		{249, 3},
		{250, 4},
		{499, 4},
		{500, 5},
		{999, 5},
		{1000, 6},
		{1999, 6},
		{2000, 7},
		{3999, 7},
		{4000, 8},
		{6999, 8},
		{7000, 9},
		{9999, 9},
		{10000, 10},
		{250000, 10},
	}

	for _, tt := range tests {
		if got := Compute(tt.total).Level; got != tt.want {
			t.Errorf("Compute(%d).Level = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestAllAdjacentBoundaries(t *testing.T) {
	// For every adjacent pair, End maps to the lower tier and End+1 to
	// the next.
	for i, tier := range Tiers() {
		if tier.Open() {
			continue
		}
		if got := Compute(tier.End).Level; got != tier.Level {
			t.Errorf("Compute(%d).Level = %d, want %d", tier.End, got, tier.Level)
		}
		if got := Compute(tier.End + 1).Level; got != tier.Level+1 {
			t.Errorf("Compute(%d).Level = %d, want %d", tier.End+1, got, tier.Level+1)
		}
		_ = i
	}
}

func TestTopTier(t *testing.T) {
	st := Compute(10000)
	if st.Level != 10 {
		t.Fatalf("Level = %d, want 10", st.Level)
	}
	if !st.IsMax {
		t.Error("IsMax should be set on the top tier")
	}
	if st.ActionsToNext != 0 {
		t.Errorf("ActionsToNext = %d, want 0", st.ActionsToNext)
	}
	if st.ProgressPercent != 100 {
		t.Errorf("ProgressPercent = %d, want 100", st.ProgressPercent)
	}
}

func TestProgressWithinTier(t *testing.T) {
	// Tier 2 spans [25, 99], 75 values.
	st := Compute(25)
	if st.ProgressPercent != 0 {
		t.Errorf("ProgressPercent at tier start = %d, want 0", st.ProgressPercent)
	}
	if st.ActionsToNext != 75 {
		t.Errorf("ActionsToNext = %d, want 75", st.ActionsToNext)
	}

	st = Compute(99)
	if st.ActionsToNext != 1 {
		t.Errorf("ActionsToNext at tier end = %d, want 1", st.ActionsToNext)
	}
	if st.ProgressPercent < 95 || st.ProgressPercent > 100 {
		t.Errorf("ProgressPercent at tier end = %d", st.ProgressPercent)
	}
}

func TestNegativeInputClamped(t *testing.T) {
	st := Compute(-5)
	if st.Level != 1 {
		t.Errorf("Level = %d, want 1", st.Level)
	}
	if st.ProgressPercent != 0 {
		t.Errorf("ProgressPercent = %d, want 0", st.ProgressPercent)
	}
}

func TestEncouragementRotates(t *testing.T) {
	// Messages rotate with the action count but are stable for a fixed
	// count.
	a := Compute(30).Encouragement
	b := Compute(30).Encouragement
	if a != b {
		t.Error("encouragement must be deterministic for a fixed count")
	}

	seen := map[string]bool{}
	for total := 25; total < 28; total++ {
		seen[Compute(total).Encouragement] = true
	}
	if len(seen) < 2 {
		t.Error("encouragement should vary across consecutive counts")
	}
}

func TestValidateTiers(t *testing.T) {
	if err := ValidateTiers(Tiers()); err != nil {
		t.Fatalf("builtin tier table invalid: %v", err)
	}
}

func TestValidateTiersRejectsGaps(t *testing.T) {
	bad := Tiers()
	bad[3].Start = 300 // opens a gap after tier 3
	if err := ValidateTiers(bad); err == nil {
		t.Error("expected error for non-contiguous table")
	}

	bad = Tiers()
	bad[len(bad)-1].End = bad[len(bad)-1].Start + 10
	if err := ValidateTiers(bad); err == nil {
		t.Error("expected error for non-open top tier")
	}

	if err := ValidateTiers(Tiers()[:5]); err == nil {
		t.Error("expected error for short table")
	}
}
