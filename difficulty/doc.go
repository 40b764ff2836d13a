// Package difficulty scores chained arithmetic problems by summing
// per-step costs from a pluggable model.
//
// What:
//
//   - StepFunc rates one operator application against the running
//     total at that moment (not the final operands).
//   - Model pairs an addition StepFunc with a subtraction StepFunc.
//   - Model.Score folds a Problem left-to-right and accumulates the
//     per-step costs into one continuous difficulty value.
//   - Default returns the built-in carry/borrow heuristic; swap in
//     your own StepFuncs to change what "hard" means.
//
// Why:
//
//   - Ranking: worksheets are assembled from a difficulty window, so
//     every problem needs a comparable scalar.
//   - Pluggability: the scorer has no opinion on cognitive load — it
//     only fixes evaluation order and summation, so difficulty
//     research can iterate on StepFuncs alone.
//
// Determinism: StepFuncs must be pure and non-negative; given that,
// scoring a Problem always yields the same value.
//
// Complexity: Score is O(terms) time, O(1) space.
package difficulty
