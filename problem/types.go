// Package problem defines core types, options, and sentinel errors
// for the problem subpackage of github.com/ksarkes/chainsum.
package problem

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for factory construction.
var (
	// ErrTermCount indicates a requested term count below two.
	ErrTermCount = errors.New("problem: terms must be at least 2")
	// ErrLimit indicates a non-positive result limit.
	ErrLimit = errors.New("problem: limit must be at least 1")
)

// Op is a single arithmetic operator in a chained expression.
type Op byte

const (
	// OpAdd is the addition operator.
	OpAdd Op = '+'
	// OpSub is the subtraction operator.
	OpSub Op = '-'
)

// String returns the operator symbol ("+" or "-").
func (o Op) String() string { return string(o) }

// Problem is one chained arithmetic exercise: Operands[0] combined
// left-to-right with each (Ops[i], Operands[i+1]) pair.
// len(Ops) == len(Operands)-1 always; treat both slices as read-only
// once a Problem has been built.
type Problem struct {
	Operands []int
	Ops      []Op
}

// Terms returns the number of operands.
func (p Problem) Terms() int { return len(p.Operands) }

// Steps returns the number of operator applications.
func (p Problem) Steps() int { return len(p.Ops) }

// Leading returns the first operator, or the zero Op for a
// single-operand Problem.
func (p Problem) Leading() Op {
	if len(p.Ops) == 0 {
		return 0
	}
	return p.Ops[0]
}

// Answer evaluates the expression left-to-right.
// Complexity: O(terms).
func (p Problem) Answer() int {
	if len(p.Operands) == 0 {
		return 0
	}
	total := p.Operands[0]
	for i, op := range p.Ops {
		if op == OpAdd {
			total += p.Operands[i+1]
		} else {
			total -= p.Operands[i+1]
		}
	}

	return total
}

// Statement renders the exercise for display: "12 + 7 - 3 = ?".
func (p Problem) Statement() string {
	var b strings.Builder
	p.writeExpression(&b)
	b.WriteString(" = ?")

	return b.String()
}

// Signature returns the canonical dedup key: the exact operand and
// operator sequences, e.g. "12 + 7 - 3". Two Problems are duplicates
// iff their Signatures are equal.
func (p Problem) Signature() string {
	var b strings.Builder
	p.writeExpression(&b)

	return b.String()
}

// writeExpression writes the bare "a op b op c" expression into b;
// Statement and Signature share it.
func (p Problem) writeExpression(b *strings.Builder) {
	if len(p.Operands) == 0 {
		return
	}
	b.WriteString(strconv.Itoa(p.Operands[0]))
	for i, op := range p.Ops {
		b.WriteByte(' ')
		b.WriteByte(byte(op))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(p.Operands[i+1]))
	}
}
