// Package selector builds the bounded, non-repeating question session for
// one quiz attempt. It is a single-pass filter, shuffle, and fixed-size
// sample — not a forgetting-curve scheduler.
package selector

import (
	"math/rand"

	"github.com/selah-app/selah/internal/bank"
)

// DefaultSessionSize is the standard number of questions per session.
const DefaultSessionSize = 10

// Session selects up to size questions from the bank, excluding mastered
// questions. Mastery is a review-avoidance filter, not deletion: the
// mastered set is recomputed from current per-question state each session,
// so a question reappears once it is answered incorrectly again.
//
// If every question in the bank is mastered the full bank is offered
// instead (review mode), so a fully-mastered topic still yields a session.
// An empty bank yields an empty session; that is a content error for the
// caller to surface, not to mask here.
//
// The chosen pool is permuted with an unbiased Fisher–Yates shuffle over
// the caller's generator, then truncated. No question ID appears twice in
// the result on either path.
func Session(qs []bank.Question, mastered map[string]bool, size int, rng *rand.Rand) []bank.Question {
	if len(qs) == 0 || size <= 0 {
		return nil
	}

	pool := make([]bank.Question, 0, len(qs))
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] || mastered[q.ID] {
			continue
		}
		seen[q.ID] = true
		pool = append(pool, q)
	}

	// Review mode: everything is mastered, offer the whole bank again.
	if len(pool) == 0 {
		seen = make(map[string]bool, len(qs))
		for _, q := range qs {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			pool = append(pool, q)
		}
	}

	shuffle(pool, rng)

	if len(pool) > size {
		pool = pool[:size]
	}
	return pool
}

// shuffle applies the Fisher–Yates permutation in place. Each element is
// swapped with a uniformly chosen index at or below it, which makes every
// permutation equally likely.
func shuffle(qs []bank.Question, rng *rand.Rand) {
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}
