package selector

import (
	"math/rand"
	"testing"

	"github.com/selah-app/selah/internal/bank"
)

func makeBank(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{ID: string(rune('a' + i))}
	}
	return qs
}

func ids(qs []bank.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestFilterExcludesMastered(t *testing.T) {
	qs := makeBank(5)
	mastered := map[string]bool{"a": true, "b": true, "c": true}
	rng := rand.New(rand.NewSource(1))

	got := Session(qs, mastered, 10, rng)
	if len(got) != 2 {
		t.Fatalf("session size = %d, want 2", len(got))
	}
	for _, q := range got {
		if mastered[q.ID] {
			t.Errorf("mastered question %q in session", q.ID)
		}
	}
}

func TestFallbackWhenAllMastered(t *testing.T) {
	qs := makeBank(5)
	mastered := map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true}
	rng := rand.New(rand.NewSource(1))

	got := Session(qs, mastered, 10, rng)
	if len(got) != 5 {
		t.Fatalf("fallback session size = %d, want full bank of 5", len(got))
	}
}

func TestNoDuplicatesEitherPath(t *testing.T) {
	qs := makeBank(8)
	// Duplicate entries in the input bank must not duplicate in output.
	qs = append(qs, qs[0], qs[3])

	for name, mastered := range map[string]map[string]bool{
		"filtered": {"a": true},
		"fallback": {"a": true, "b": true, "c": true, "d": true, "e": true, "f": true, "g": true, "h": true},
	} {
		rng := rand.New(rand.NewSource(7))
		got := Session(qs, mastered, 20, rng)
		seen := map[string]bool{}
		for _, q := range got {
			if seen[q.ID] {
				t.Errorf("%s: duplicate %q in session", name, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestTruncation(t *testing.T) {
	qs := makeBank(20)
	rng := rand.New(rand.NewSource(3))

	got := Session(qs, nil, DefaultSessionSize, rng)
	if len(got) != DefaultSessionSize {
		t.Errorf("session size = %d, want %d", len(got), DefaultSessionSize)
	}
}

func TestEmptyBank(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	if got := Session(nil, nil, 10, rng); got != nil {
		t.Errorf("empty bank session = %v, want nil", ids(got))
	}
}

func TestShortSessionWhenPoolSmall(t *testing.T) {
	qs := makeBank(3)
	rng := rand.New(rand.NewSource(3))
	got := Session(qs, nil, 10, rng)
	if len(got) != 3 {
		t.Errorf("session size = %d, want 3", len(got))
	}
}

// TestShuffleFairness runs many seeded shuffles of a small bank and
// checks that each element lands in each position with near-uniform
// frequency. A chi-square statistic over the position counts detects a
// biased shuffle (e.g. forward-only single-pass swaps).
func TestShuffleFairness(t *testing.T) {
	const (
		n      = 5
		trials = 100000
	)
	rng := rand.New(rand.NewSource(42))

	// counts[element][position]
	var counts [n][n]int
	for trial := 0; trial < trials; trial++ {
		qs := makeBank(n)
		shuffle(qs, rng)
		for pos, q := range qs {
			counts[int(q.ID[0]-'a')][pos]++
		}
	}

	expected := float64(trials) / n
	chi2 := 0.0
	for e := 0; e < n; e++ {
		for p := 0; p < n; p++ {
			diff := float64(counts[e][p]) - expected
			chi2 += diff * diff / expected
		}
	}

	// 24 degrees of freedom ((n-1)^2 independent cells plus margin);
	// 99.9th percentile of chi-square(24) is ~51.2. Comfortably above
	// that means bias.
	if chi2 > 52 {
		t.Errorf("chi-square = %.1f, shuffle looks biased (counts: %v)", chi2, counts)
	}
}

// TestShuffleReachesAllPermutations spot-checks that distinct orderings
// actually occur for a small pool.
func TestShuffleReachesAllPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	perms := map[string]bool{}
	for trial := 0; trial < 2000; trial++ {
		qs := makeBank(3)
		shuffle(qs, rng)
		key := qs[0].ID + qs[1].ID + qs[2].ID
		perms[key] = true
	}
	if len(perms) != 6 {
		t.Errorf("reached %d of 6 permutations", len(perms))
	}
}
