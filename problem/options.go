// options.go — functional options for the problem factory.
//
// Contract (strict):
//   - Options are functional (type Option func(*Factory)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the factory itself never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package problem

import "math/rand"

// Option customizes a Factory before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*Factory)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 selects the fixed default stream. Use this in tests and
// examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(f *Factory) {
		f.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG for generation.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("problem: WithRand(nil)")
	}
	return func(f *Factory) {
		f.rng = r
	}
}
