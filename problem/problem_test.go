package problem_test

import (
	"errors"
	"testing"

	"github.com/ksarkes/chainsum/problem"
)

//----------------------------------------------------------------------------//
// Problem value tests
//----------------------------------------------------------------------------//

// TestProblem_AnswerAndStatement checks left-to-right evaluation and rendering.
func TestProblem_AnswerAndStatement(t *testing.T) {
	cases := []struct {
		name      string
		p         problem.Problem
		answer    int
		statement string
	}{
		{
			"TwoTermAdd",
			problem.Problem{Operands: []int{12, 7}, Ops: []problem.Op{problem.OpAdd}},
			19,
			"12 + 7 = ?",
		},
		{
			"TwoTermSub",
			problem.Problem{Operands: []int{40, 15}, Ops: []problem.Op{problem.OpSub}},
			25,
			"40 - 15 = ?",
		},
		{
			"Chained",
			problem.Problem{Operands: []int{12, 7, 3}, Ops: []problem.Op{problem.OpAdd, problem.OpSub}},
			16,
			"12 + 7 - 3 = ?",
		},
		{
			"SingleOperand",
			problem.Problem{Operands: []int{5}},
			5,
			"5 = ?",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Answer(); got != tc.answer {
				t.Errorf("Answer() = %d; want %d", got, tc.answer)
			}
			if got := tc.p.Statement(); got != tc.statement {
				t.Errorf("Statement() = %q; want %q", got, tc.statement)
			}
		})
	}
}

// TestProblem_AnswerDeterminism verifies repeated evaluation yields the same value.
func TestProblem_AnswerDeterminism(t *testing.T) {
	p := problem.Problem{
		Operands: []int{30, 25, 40, 10},
		Ops:      []problem.Op{problem.OpSub, problem.OpAdd, problem.OpSub},
	}
	first := p.Answer()
	for i := 0; i < 10; i++ {
		if got := p.Answer(); got != first {
			t.Fatalf("Answer() = %d on repeat %d; want %d", got, i, first)
		}
	}
}

// TestProblem_SignatureDistinguishesOrder checks that operand order and
// operator identity both participate in the dedup key.
func TestProblem_SignatureDistinguishesOrder(t *testing.T) {
	a := problem.Problem{Operands: []int{12, 3}, Ops: []problem.Op{problem.OpAdd}}
	b := problem.Problem{Operands: []int{3, 12}, Ops: []problem.Op{problem.OpAdd}}
	c := problem.Problem{Operands: []int{12, 3}, Ops: []problem.Op{problem.OpSub}}

	if a.Signature() == b.Signature() {
		t.Error("operand order must change the signature")
	}
	if a.Signature() == c.Signature() {
		t.Error("operator must change the signature")
	}
	same := problem.Problem{Operands: []int{12, 3}, Ops: []problem.Op{problem.OpAdd}}
	if a.Signature() != same.Signature() {
		t.Error("identical problems must share a signature")
	}
}

// TestProblem_Leading covers leading-operator classification.
func TestProblem_Leading(t *testing.T) {
	minus := problem.Problem{Operands: []int{9, 4, 2}, Ops: []problem.Op{problem.OpSub, problem.OpAdd}}
	if minus.Leading() != problem.OpSub {
		t.Errorf("Leading() = %q; want %q", minus.Leading(), problem.OpSub)
	}
	bare := problem.Problem{Operands: []int{9}}
	if bare.Leading() != 0 {
		t.Errorf("Leading() of single-operand problem = %q; want zero Op", bare.Leading())
	}
}

//----------------------------------------------------------------------------//
// Deduplicate tests
//----------------------------------------------------------------------------//

// TestDeduplicate_CollapsesRepeats verifies that k copies of one
// signature collapse to the first occurrence.
func TestDeduplicate_CollapsesRepeats(t *testing.T) {
	dup := problem.Problem{Operands: []int{8, 5}, Ops: []problem.Op{problem.OpAdd}}
	other := problem.Problem{Operands: []int{8, 5}, Ops: []problem.Op{problem.OpSub}}
	in := []problem.Problem{dup, other, dup, dup, dup}

	out := problem.Deduplicate(in)
	if len(out) != 2 {
		t.Fatalf("Deduplicate kept %d problems; want 2", len(out))
	}
	if out[0].Signature() != dup.Signature() || out[1].Signature() != other.Signature() {
		t.Errorf("first-seen order not preserved: %q, %q", out[0].Signature(), out[1].Signature())
	}
}

// TestDeduplicate_Idempotent verifies a unique slice passes through unchanged.
func TestDeduplicate_Idempotent(t *testing.T) {
	in := []problem.Problem{
		{Operands: []int{1, 2}, Ops: []problem.Op{problem.OpAdd}},
		{Operands: []int{2, 1}, Ops: []problem.Op{problem.OpAdd}},
		{Operands: []int{9, 3}, Ops: []problem.Op{problem.OpSub}},
	}
	out := problem.Deduplicate(in)
	if len(out) != len(in) {
		t.Fatalf("Deduplicate changed length: %d -> %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Signature() != in[i].Signature() {
			t.Errorf("position %d changed: %q -> %q", i, in[i].Signature(), out[i].Signature())
		}
	}
}

//----------------------------------------------------------------------------//
// Factory tests
//----------------------------------------------------------------------------//

// TestNewFactory_Errors verifies constructor validation sentinels.
func TestNewFactory_Errors(t *testing.T) {
	cases := []struct {
		name         string
		terms, limit int
		err          error
	}{
		{"OneTerm", 1, 100, problem.ErrTermCount},
		{"ZeroTerms", 0, 100, problem.ErrTermCount},
		{"ZeroLimit", 2, 0, problem.ErrLimit},
		{"NegativeLimit", 3, -5, problem.ErrLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.NewFactory(tc.terms, tc.limit)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewFactory(%d, %d) error = %v; want %v", tc.terms, tc.limit, err, tc.err)
			}
		})
	}
}

// TestFactory_CreateInvariants generates a large batch across several
// shapes and checks every prefix total stays in [0, limit] and every
// operand is positive.
func TestFactory_CreateInvariants(t *testing.T) {
	const limit = 100
	for _, terms := range []int{2, 3, 4, 5} {
		f, err := problem.NewFactory(terms, limit, problem.WithSeed(42))
		if err != nil {
			t.Fatalf("NewFactory(%d, %d) error: %v", terms, limit, err)
		}
		produced := 0
		for attempt := 0; attempt < 2000; attempt++ {
			p, ok := f.Create()
			if !ok {
				continue
			}
			produced++
			if p.Terms() != terms || p.Steps() != terms-1 {
				t.Fatalf("terms=%d: got shape %d/%d", terms, p.Terms(), p.Steps())
			}
			total := p.Operands[0]
			if total < 1 || total > limit {
				t.Fatalf("first operand %d out of [1,%d]", total, limit)
			}
			for i, op := range p.Ops {
				n := p.Operands[i+1]
				if n < 1 {
					t.Fatalf("operand %d not positive in %q", n, p.Statement())
				}
				if op == problem.OpAdd {
					total += n
				} else {
					total -= n
				}
				if total < 0 || total > limit {
					t.Fatalf("prefix total %d out of [0,%d] in %q", total, limit, p.Statement())
				}
			}
			if total != p.Answer() {
				t.Fatalf("prefix evaluation %d != Answer() %d", total, p.Answer())
			}
		}
		if produced == 0 {
			t.Fatalf("terms=%d: no valid problems in 2000 attempts", terms)
		}
	}
}

// TestFactory_SeedDeterminism verifies identical seeds yield identical streams.
func TestFactory_SeedDeterminism(t *testing.T) {
	a, _ := problem.NewFactory(3, 50, problem.WithSeed(7))
	b, _ := problem.NewFactory(3, 50, problem.WithSeed(7))
	for i := 0; i < 200; i++ {
		pa, oka := a.Create()
		pb, okb := b.Create()
		if oka != okb {
			t.Fatalf("attempt %d: ok mismatch %v vs %v", i, oka, okb)
		}
		if !oka {
			continue
		}
		if pa.Signature() != pb.Signature() {
			t.Fatalf("attempt %d: %q != %q", i, pa.Signature(), pb.Signature())
		}
	}
}

// TestWithRand_NilPanics ensures option constructors fail fast.
func TestWithRand_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithRand(nil) must panic")
		}
	}()
	problem.WithRand(nil)
}
