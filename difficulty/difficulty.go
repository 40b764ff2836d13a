package difficulty

import (
	"math"
	"strconv"
	"strings"

	"github.com/ksarkes/chainsum/problem"
)

// StepFunc rates a single operator application. It receives the
// running total before the step (within [0, limit]) and the positive
// operand, and returns a non-negative cost. Implementations must be
// pure: same inputs, same cost.
type StepFunc func(running, operand int) float64

// Model supplies one StepFunc per operator kind.
type Model struct {
	// Add rates "running + operand" steps.
	Add StepFunc
	// Sub rates "running - operand" steps.
	Sub StepFunc
}

// Valid reports whether both step functions are present.
func (m Model) Valid() bool { return m.Add != nil && m.Sub != nil }

// Score sums the per-step costs of p, updating the running total by
// the same arithmetic the Problem encodes. A Problem without operator
// steps scores 0. Requires m.Valid().
// Complexity: O(terms).
func (m Model) Score(p problem.Problem) float64 {
	if len(p.Operands) == 0 {
		return 0
	}
	total := 0.0
	running := p.Operands[0]
	for i, op := range p.Ops {
		n := p.Operands[i+1]
		if op == problem.OpAdd {
			total += m.Add(running, n)
			running += n
		} else {
			total += m.Sub(running, n)
			running -= n
		}
	}

	return total
}

// Scored pairs a Problem with its difficulty level. Created once per
// problem and never mutated.
type Scored struct {
	Problem problem.Problem
	Level   float64
}

// FormatLevel renders a difficulty value for humans: two decimals with
// trailing zeros trimmed, and "∞" for an unbounded maximum.
func FormatLevel(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}

	return s
}
