package difficulty_test

import (
	"math"
	"testing"

	"github.com/ksarkes/chainsum/difficulty"
	"github.com/ksarkes/chainsum/problem"
	"github.com/stretchr/testify/assert"
)

// unitModel charges 1 per addition step and 10 per subtraction step,
// making expected totals trivial to compute by hand.
func unitModel() difficulty.Model {
	return difficulty.Model{
		Add: func(running, operand int) float64 { return 1 },
		Sub: func(running, operand int) float64 { return 10 },
	}
}

// TestModel_Valid covers the presence check for both step functions.
func TestModel_Valid(t *testing.T) {
	assert.True(t, unitModel().Valid())
	assert.True(t, difficulty.Default().Valid())
	assert.False(t, difficulty.Model{}.Valid())
	assert.False(t, difficulty.Model{Add: unitModel().Add}.Valid())
}

// TestModel_Score_CountsSteps verifies one contribution per operator
// application and zero for problems without steps.
func TestModel_Score_CountsSteps(t *testing.T) {
	m := unitModel()

	chained := problem.Problem{
		Operands: []int{12, 7, 3},
		Ops:      []problem.Op{problem.OpAdd, problem.OpSub},
	}
	assert.Equal(t, 11.0, m.Score(chained), "one add step + one sub step")

	bare := problem.Problem{Operands: []int{42}}
	assert.Equal(t, 0.0, m.Score(bare), "no operator steps, no cost")
}

// TestModel_Score_UsesRunningTotal verifies steps are rated against
// the running total at the time of the step, not the final operands.
func TestModel_Score_UsesRunningTotal(t *testing.T) {
	var seen []int
	m := difficulty.Model{
		Add: func(running, operand int) float64 {
			seen = append(seen, running)
			return 0
		},
		Sub: func(running, operand int) float64 {
			seen = append(seen, running)
			return 0
		},
	}
	p := problem.Problem{
		Operands: []int{30, 25, 40},
		Ops:      []problem.Op{problem.OpSub, problem.OpAdd},
	}
	m.Score(p)
	assert.Equal(t, []int{30, 5}, seen, "running totals before each step")
}

// TestModel_Score_Deterministic verifies repeat scoring yields the
// same non-negative value under the default model.
func TestModel_Score_Deterministic(t *testing.T) {
	m := difficulty.Default()
	p := problem.Problem{
		Operands: []int{47, 38, 21},
		Ops:      []problem.Op{problem.OpAdd, problem.OpSub},
	}
	first := m.Score(p)
	assert.GreaterOrEqual(t, first, 0.0)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Score(p))
	}
}

// TestDefault_CarriesAndBorrowsRaiseCost checks the built-in heuristic
// orders digit-interacting steps above clean ones.
func TestDefault_CarriesAndBorrowsRaiseCost(t *testing.T) {
	m := difficulty.Default()

	clean := problem.Problem{Operands: []int{12, 3}, Ops: []problem.Op{problem.OpAdd}}
	carry := problem.Problem{Operands: []int{17, 8}, Ops: []problem.Op{problem.OpAdd}}
	assert.Greater(t, m.Score(carry), m.Score(clean), "carry must cost more")

	cleanSub := problem.Problem{Operands: []int{28, 5}, Ops: []problem.Op{problem.OpSub}}
	borrow := problem.Problem{Operands: []int{23, 5}, Ops: []problem.Op{problem.OpSub}}
	assert.Greater(t, m.Score(borrow), m.Score(cleanSub), "borrow must cost more")
}

// TestFormatLevel covers the human formatting rules.
func TestFormatLevel(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{10.5, "10.5"},
		{10.25, "10.25"},
		{3.10, "3.1"},
		{math.Inf(1), "∞"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, difficulty.FormatLevel(tc.in), "FormatLevel(%v)", tc.in)
	}
}
