// Package level maps a lifetime qualifying-action count to a discrete
// tier with progress-within-tier feedback. Pure calculator over a single
// scalar; no store access, no errors.
package level

// State is the derived level state. Never persisted; recomputed from the
// profile counter on each load.
type State struct {
	Level           int
	Name            string
	Identity        string
	Encouragement   string
	Start           int
	End             int
	ProgressPercent int
	ActionsToNext   int
	// IsMax is set on the open-ended top tier, where no next level
	// exists and ProgressPercent is pinned at 100.
	IsMax bool
}

// Compute maps totalActions to its tier: the highest tier whose Start is
// <= totalActions. Negative input is a caller contract violation and is
// clamped to zero rather than rejected.
func Compute(totalActions int) State {
	if totalActions < 0 {
		totalActions = 0
	}

	t := tiers[0]
	for _, cand := range tiers {
		if cand.Start <= totalActions {
			t = cand
		}
	}

	st := State{
		Level:         t.Level,
		Name:          t.Name,
		Identity:      t.Identity,
		Encouragement: t.Encouragements[totalActions%len(t.Encouragements)],
		Start:         t.Start,
		End:           t.End,
	}

	if t.Open() {
		st.IsMax = true
		st.ProgressPercent = 100
		st.ActionsToNext = 0
		return st
	}

	span := t.End - t.Start + 1
	st.ProgressPercent = clamp(0, 100, (totalActions-t.Start)*100/span)
	st.ActionsToNext = t.End - totalActions + 1
	if st.ActionsToNext < 0 {
		st.ActionsToNext = 0
	}
	return st
}

func clamp(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
