// Package selector defines the request, result, and pool types for
// constrained batch selection in github.com/ksarkes/chainsum.
package selector

import (
	"fmt"

	"github.com/ksarkes/chainsum/difficulty"
)

// Request is the immutable parameter set for one selection round.
type Request struct {
	// Amount is the requested batch size.
	Amount int
	// MinusPercent is the target share of subtraction-led problems,
	// 0..100. The remainder goes to addition-led problems.
	MinusPercent int
	// MinLevel and MaxLevel bound difficulty, both inclusive.
	// Use math.Inf(1) for an unbounded maximum.
	MinLevel, MaxLevel float64
	// CapAnswers limits any single final answer to ceil(Amount/10)
	// occurrences in the batch.
	CapAnswers bool
	// BalanceHalves replaces the percentage quota with an exact
	// half/half split; an odd Amount assigns the remainder to a
	// random side. Meant for two-operand drills.
	BalanceHalves bool
}

// NoteKind classifies a degradation report.
type NoteKind int

const (
	// NoteEmpty: the difficulty window matched nothing.
	NoteEmpty NoteKind = iota
	// NoteMinusShort: fewer subtraction-led problems than the quota.
	NoteMinusShort
	// NotePlusShort: fewer addition-led problems than the quota.
	NotePlusShort
	// NoteBatchShort: the finished batch is smaller than Amount.
	NoteBatchShort
)

// Note reports one degradation: the quota or size wanted and what the
// supply actually allowed. Informational only — selection already did
// the best it could.
type Note struct {
	Kind NoteKind
	Want int
	Have int
}

// String renders the note for operator-facing output.
func (n Note) String() string {
	switch n.Kind {
	case NoteEmpty:
		return "no problems inside the difficulty window; relax the bounds"
	case NoteMinusShort:
		return fmt.Sprintf("only %d subtraction-led problems left, wanted %d", n.Have, n.Want)
	case NotePlusShort:
		return fmt.Sprintf("only %d addition-led problems left, wanted %d", n.Have, n.Want)
	case NoteBatchShort:
		return fmt.Sprintf("selected %d of %d requested problems; lower the difficulty or the amount", n.Have, n.Want)
	default:
		return fmt.Sprintf("selector: unknown note kind %d", int(n.Kind))
	}
}

// Result is one selected batch plus its operator mix and any
// degradation notes. len(Problems) never exceeds Request.Amount.
type Result struct {
	Problems   []difficulty.Scored
	PlusCount  int
	MinusCount int
	Notes      []Note
}

// Pool is the mutable working set a selection round consumes from.
// Problems handed to a batch are removed, so multi-batch export never
// reuses an instance. Pool is not safe for concurrent use.
type Pool struct {
	items []difficulty.Scored
}

// NewPool copies items into a fresh pool.
func NewPool(items []difficulty.Scored) *Pool {
	p := &Pool{items: make([]difficulty.Scored, len(items))}
	copy(p.items, items)

	return p
}

// Len returns the number of problems still available.
func (p *Pool) Len() int { return len(p.items) }

// Remaining returns a copy of the problems still available.
func (p *Pool) Remaining() []difficulty.Scored {
	out := make([]difficulty.Scored, len(p.items))
	copy(out, p.items)

	return out
}

// removeTaken drops the pool entries whose indices are marked taken.
// Indices refer to the pool's current item order.
func (p *Pool) removeTaken(taken map[int]bool) {
	if len(taken) == 0 {
		return
	}
	kept := p.items[:0]
	for i, s := range p.items {
		if !taken[i] {
			kept = append(kept, s)
		}
	}
	p.items = kept
}
