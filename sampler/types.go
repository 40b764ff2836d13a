// Package sampler defines options and sentinel errors for pool
// sampling in github.com/ksarkes/chainsum.
package sampler

import (
	"errors"

	"github.com/ksarkes/chainsum/problem"
)

// Sentinel errors for sampling operations.
var (
	// ErrNilSource indicates Sample was called without a problem source.
	ErrNilSource = errors.New("sampler: problem source must not be nil")
	// ErrBadModel indicates a difficulty model missing a step function.
	ErrBadModel = errors.New("sampler: difficulty model must provide add and sub step functions")
	// ErrSampleSize indicates a non-positive requested sample size.
	ErrSampleSize = errors.New("sampler: sample size must be at least 1")
	// ErrInsufficientSupply indicates the attempt budget ran out before
	// the requested count of valid problems was reached.
	ErrInsufficientSupply = errors.New("sampler: attempt budget exhausted before sample size was reached")
)

// Source yields one random problem attempt per call; ok=false marks a
// failed attempt to be discarded and retried. *problem.Factory
// satisfies Source.
type Source interface {
	Create() (problem.Problem, bool)
}

// Default sampling parameters.
const (
	// DefaultSampleSize is the number of valid problems collected for
	// distribution estimation.
	DefaultSampleSize = 100000
	// DefaultPrecision is the number of decimals difficulty levels are
	// rounded to when bucketing.
	DefaultPrecision = 2
	// DefaultAttemptFactor bounds total attempts at factor × sample size.
	DefaultAttemptFactor = 200
)

// Options tunes one sampling run.
type Options struct {
	// SampleSize is the target count of valid (pre-dedup) problems.
	SampleSize int
	// Precision is the bucket rounding used by distribution reports.
	Precision int
	// AttemptFactor caps total attempts at AttemptFactor × SampleSize;
	// values < 1 fall back to DefaultAttemptFactor.
	AttemptFactor int
}

// DefaultOptions returns the standard sampling parameters:
// 100000 samples, 2-decimal buckets, 200× attempt budget.
func DefaultOptions() Options {
	return Options{
		SampleSize:    DefaultSampleSize,
		Precision:     DefaultPrecision,
		AttemptFactor: DefaultAttemptFactor,
	}
}
