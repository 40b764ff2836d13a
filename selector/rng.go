// Package selector - RNG helpers for bias-free batch draws.
//
// Shuffling destroys residual generation-order bias in the candidate
// pool before quotas are applied. Same seed ⇒ identical batches.
package selector

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil RNG.
const defaultRNGSeed int64 = 1

// rngOrDefault returns r, or a deterministic default stream when r is nil.
// Complexity: O(1).
func rngOrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return rand.New(rand.NewSource(defaultRNGSeed))
}

// shuffleEntries performs an in-place Fisher–Yates shuffle.
// Complexity: O(n) time, O(1) extra space.
func shuffleEntries(a []entry, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
