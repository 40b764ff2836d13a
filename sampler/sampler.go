package sampler

import (
	"github.com/ksarkes/chainsum/difficulty"
	"github.com/ksarkes/chainsum/problem"
)

// Sample collects opts.SampleSize valid problems from src, discarding
// failed attempts and problems without operator steps, then
// deduplicates by signature and scores the survivors with m.
//
// Total attempts are capped at AttemptFactor × SampleSize. If the cap
// is hit first, Sample returns the deduplicated, scored partial pool
// together with ErrInsufficientSupply so callers can degrade instead
// of blocking on a starved terms/limit combination.
//
// The returned pool may be smaller than SampleSize even without error:
// deduplication only keeps unique problems.
func Sample(src Source, m difficulty.Model, opts Options) ([]difficulty.Scored, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if !m.Valid() {
		return nil, ErrBadModel
	}
	if opts.SampleSize < 1 {
		return nil, ErrSampleSize
	}
	factor := opts.AttemptFactor
	if factor < 1 {
		factor = DefaultAttemptFactor
	}
	budget := opts.SampleSize * factor

	raw := make([]problem.Problem, 0, opts.SampleSize)
	short := false
	for attempts := 0; len(raw) < opts.SampleSize; attempts++ {
		if attempts >= budget {
			short = true
			break
		}
		p, ok := src.Create()
		if !ok || p.Steps() == 0 {
			continue
		}
		raw = append(raw, p)
	}

	unique := problem.Deduplicate(raw)
	scored := make([]difficulty.Scored, len(unique))
	for i, p := range unique {
		scored[i] = difficulty.Scored{Problem: p, Level: m.Score(p)}
	}
	if short {
		return scored, ErrInsufficientSupply
	}

	return scored, nil
}
