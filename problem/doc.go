// Package problem models chained addition/subtraction exercises and
// generates them randomly within hard bounds.
//
// What:
//
//   - Problem holds an ordered operand sequence and its operator
//     sequence ("12 + 7 - 3 = ?").
//   - Factory produces random Problems whose running total never
//     leaves [0, limit] at any intermediate step.
//   - Deduplicate removes exact repeats by canonical Signature,
//     preserving first-seen order.
//
// Why:
//
//   - Worksheet generation: every emitted exercise is guaranteed
//     solvable with non-negative intermediate results.
//   - Rejection sampling: a single Create attempt may fail; callers
//     retry under their own budget.
//
// Generation rules (per step, after a uniform first operand in [1, limit]):
//
//   - Operator is chosen uniformly between + and -.
//   - + at the limit is forced to -; - at zero is forced to +.
//   - A + operand is uniform in [1, limit−total]; a - operand is
//     uniform in [1, total].
//   - If the forced fallback is infeasible too, the attempt fails:
//     Create returns (Problem{}, false), never an invalid Problem.
//
// Errors:
//
//   - ErrTermCount: fewer than two terms requested.
//   - ErrLimit: non-positive limit requested.
//
// Determinism: same seed ⇒ identical Problem streams. Seeding is
// explicit via WithSeed or WithRand; seed 0 selects a fixed default
// stream. A *rand.Rand is not goroutine-safe; do not share one
// Factory across goroutines.
package problem
