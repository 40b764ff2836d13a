package problem

import "math/rand"

// Factory generates random Problems with a fixed term count and
// result limit. It is configured once by NewFactory and safe to call
// repeatedly from a single goroutine.
type Factory struct {
	terms int
	limit int
	rng   *rand.Rand
}

// NewFactory constructs a Factory for `terms`-operand Problems whose
// running total stays within [0, limit].
// Returns ErrTermCount if terms < 2, ErrLimit if limit < 1.
// Complexity: O(len(opts)).
func NewFactory(terms, limit int, opts ...Option) (*Factory, error) {
	if terms < 2 {
		return nil, ErrTermCount
	}
	if limit < 1 {
		return nil, ErrLimit
	}
	f := &Factory{terms: terms, limit: limit}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rngFromSeed(0)
	}

	return f, nil
}

// Terms returns the configured operand count.
func (f *Factory) Terms() int { return f.terms }

// Limit returns the configured running-total bound.
func (f *Factory) Limit() int { return f.limit }

// Create makes one generation attempt.
//
// The first operand is uniform in [1, limit]. Each later step draws a
// uniform operator; an infeasible draw falls back to the other
// operator (+ at the limit ⇒ -, - at zero ⇒ +). When the fallback is
// infeasible too, the attempt fails and Create reports ok=false —
// callers retry under their own budget.
//
// Every returned Problem keeps all prefix totals in [0, limit].
// Complexity: O(terms) per attempt.
func (f *Factory) Create() (Problem, bool) {
	current := 1 + f.rng.Intn(f.limit)
	operands := make([]int, 1, f.terms)
	operands[0] = current
	ops := make([]Op, 0, f.terms-1)

	for step := 1; step < f.terms; step++ {
		op := OpAdd
		if f.rng.Intn(2) == 1 {
			op = OpSub
		}

		if op == OpAdd {
			if room := f.limit - current; room > 0 {
				n := 1 + f.rng.Intn(room)
				current += n
				operands = append(operands, n)
				ops = append(ops, OpAdd)
				continue
			}
			// Running total already at the limit: nothing to add.
			op = OpSub
		}

		if current == 0 {
			// Subtraction would go negative; force an addition instead.
			room := f.limit - current
			if room <= 0 {
				return Problem{}, false
			}
			n := 1 + f.rng.Intn(room)
			current += n
			operands = append(operands, n)
			ops = append(ops, OpAdd)
			continue
		}

		n := 1 + f.rng.Intn(current)
		current -= n
		operands = append(operands, n)
		ops = append(ops, OpSub)
	}

	return Problem{Operands: operands, Ops: ops}, true
}
