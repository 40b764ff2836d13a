// Package sampler builds large scored problem pools by bounded
// rejection sampling and reports their difficulty distribution.
//
// What:
//
//   - Sample repeatedly invokes a problem source until the requested
//     number of valid problems has accumulated, then deduplicates and
//     scores the batch.
//   - NewDistribution buckets a scored pool by rounded difficulty so
//     a human can pick realistic min/max bounds before requesting a
//     worksheet batch.
//
// Why:
//
//   - Distribution estimation: the difficulty scale is heuristic;
//     sensible windows come from looking at real sample histograms.
//   - Candidate supply: the same pool feeds constrained selection.
//
// Resource bound:
//
//   - Generation is generate-and-test; validity can be rare for some
//     terms/limit combinations. Sample therefore caps total attempts
//     at AttemptFactor × SampleSize and returns the partial pool with
//     ErrInsufficientSupply instead of spinning forever.
//
// Errors:
//
//   - ErrNilSource: no problem source supplied.
//   - ErrBadModel: difficulty model missing a step function.
//   - ErrSampleSize: non-positive sample size.
//   - ErrInsufficientSupply: attempt budget exhausted before the
//     requested count; the returned pool holds what was collected.
//
// Complexity: O(attempts × terms) time, O(SampleSize) memory.
package sampler
