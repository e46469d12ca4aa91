package level

import "fmt"

// Tier is one named band of lifetime qualifying-action counts. The table
// is declarative so the boundary invariants can be checked by a loop
// instead of by inspection.
type Tier struct {
	Level    int
	Start    int
	End      int // End == Start on the top tier: open-ended upward
	Name     string
	Identity string
	// Encouragements is a short rotation pool; Compute picks one
	// deterministically so messaging varies between loads.
	Encouragements []string
}

// Open reports whether the tier is the open-ended top tier.
func (t Tier) Open() bool {
	return t.End == t.Start && t.Level == MaxLevel
}

// MaxLevel is the highest tier level.
const MaxLevel = 10

// tiers is the fixed threshold table, ordered by Start. Ranges are
// contiguous and non-overlapping; ValidateTiers asserts this.
var tiers = []Tier{
	{1, 0, 24, "Seedling", "You are planting the first seeds of a daily habit.", []string{
		"Every journey starts with a single verse.",
		"Small steps today, deep roots tomorrow.",
		"Keep going — the first tier is the hardest.",
	}},
	{2, 25, 99, "Seeker", "You are seeking, and the habit is taking hold.", []string{
		"Your curiosity is becoming a rhythm.",
		"Seek and you will find — keep at it.",
		"The pages are starting to feel familiar.",
	}},
	{3, 100, 249, "Learner", "You are learning the landscape of the text.", []string{
		"A hundred actions in — this is real momentum.",
		"Names and places are sticking now.",
		"Your study muscles are getting stronger.",
	}},
	{4, 250, 499, "Disciple", "You are a committed student of the word.", []string{
		"Discipline is turning into devotion.",
		"Day by day, the picture gets clearer.",
		"You show up, and it shows.",
	}},
	{5, 500, 999, "Scholar", "You know your way around the whole library.",
		[]string{
			"Five hundred strong — a true scholar's pace.",
			"Depth and breadth, both growing.",
			"Your recall is becoming remarkable.",
		}},
	{6, 1000, 1999, "Teacher", "You could guide others through these pages.", []string{
		"A thousand actions — others could learn from you.",
		"Mastery shared is mastery doubled.",
		"Your consistency is an example.",
	}},
	{7, 2000, 3999, "Elder", "Your knowledge carries the weight of time.", []string{
		"Steady over seasons, not just days.",
		"Wisdom compounds — yours is compounding fast.",
		"Few make it this far. You did.",
	}},
	{8, 4000, 6999, "Shepherd", "You tend this knowledge like a flock.", []string{
		"Four thousand milestones behind you.",
		"You guard what you have gathered.",
		"The long road suits you.",
	}},
	{9, 7000, 9999, "Sage", "Your understanding runs deep and quiet.", []string{
		"Seven thousand and counting — rarefied air.",
		"Quiet mastery, earned the slow way.",
		"One summit left.",
	}},
	{10, 10000, 10000, "Luminary", "You have reached the summit of this path.", []string{
		"Ten thousand actions. There is no higher tier — only deeper wisdom.",
		"The summit is yours. Keep walking anyway.",
		"You finished the ladder. The text remains endless.",
	}},
}

// Tiers returns a copy of the threshold table, ordered by Start.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// ValidateTiers performs the structural checks on the threshold table:
// levels 1..MaxLevel in order, ranges contiguous and non-overlapping,
// top tier open-ended, every tier named and with at least one
// encouragement. Returns a combined error, or nil if valid.
func ValidateTiers(tt []Tier) error {
	if len(tt) != MaxLevel {
		return fmt.Errorf("tier table has %d entries, want %d", len(tt), MaxLevel)
	}

	var errs []error
	for i, t := range tt {
		if t.Level != i+1 {
			errs = append(errs, fmt.Errorf("tier %d: level = %d, want %d", i, t.Level, i+1))
		}
		if t.Name == "" || t.Identity == "" {
			errs = append(errs, fmt.Errorf("tier %d: missing name or identity text", i))
		}
		if len(t.Encouragements) == 0 {
			errs = append(errs, fmt.Errorf("tier %d: empty encouragement pool", i))
		}
		if i == len(tt)-1 {
			if t.End != t.Start {
				errs = append(errs, fmt.Errorf("top tier must be open-ended (End == Start), got [%d, %d]", t.Start, t.End))
			}
			continue
		}
		if t.End < t.Start {
			errs = append(errs, fmt.Errorf("tier %d: End %d < Start %d", i, t.End, t.Start))
		}
		if tt[i+1].Start != t.End+1 {
			errs = append(errs, fmt.Errorf("tier %d -> %d: gap or overlap (%d then %d)", i, i+1, t.End, tt[i+1].Start))
		}
	}
	if tt[0].Start != 0 {
		errs = append(errs, fmt.Errorf("first tier must start at 0, got %d", tt[0].Start))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid tier table: %v", errs)
	}
	return nil
}
