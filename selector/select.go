package selector

import (
	"math"
	"math/rand"

	"github.com/ksarkes/chainsum/difficulty"
	"github.com/ksarkes/chainsum/problem"
)

// entry carries a pool candidate's position in the pool's current item
// order plus its precomputed answer, so picks can be cap-checked and
// removed afterwards without re-evaluating.
type entry struct {
	idx    int
	answer int
}

// Select picks one batch from pool according to req.
//
// Round outline:
//  1. filter to the inclusive [MinLevel, MaxLevel] window;
//  2. nothing eligible ⇒ empty Result with NoteEmpty;
//  3. shuffle the eligible set;
//  4. partition by leading operator;
//  5. compute quotas (percentage, or exact halves when BalanceHalves),
//     shrinking undersupplied quotas with a Note;
//  6. draw up to each quota, skipping cap-exhausted answers when
//     CapAnswers is set;
//  7. top up from the remaining eligible problems, ignoring the
//     operator mix (the cap still holds);
//  8. truncate to Amount.
//
// Selected problems are removed from pool. A nil rng selects the
// deterministic default stream. Amount < 1 or a nil pool yields an
// empty Result; Select never fails.
func Select(pool *Pool, req Request, rng *rand.Rand) Result {
	var res Result
	if pool == nil || req.Amount < 1 {
		return res
	}
	r := rngOrDefault(rng)

	eligible := make([]entry, 0, len(pool.items))
	for i, s := range pool.items {
		if s.Level >= req.MinLevel && s.Level <= req.MaxLevel {
			eligible = append(eligible, entry{idx: i, answer: s.Problem.Answer()})
		}
	}
	if len(eligible) == 0 {
		res.Notes = append(res.Notes, Note{Kind: NoteEmpty})
		return res
	}

	shuffleEntries(eligible, r)

	var minusPool, plusPool []entry
	for _, e := range eligible {
		if pool.items[e.idx].Problem.Leading() == problem.OpSub {
			minusPool = append(minusPool, e)
		} else {
			plusPool = append(plusPool, e)
		}
	}

	minusTarget, plusTarget := quotas(req, r)
	if len(minusPool) < minusTarget {
		res.Notes = append(res.Notes, Note{Kind: NoteMinusShort, Want: minusTarget, Have: len(minusPool)})
		minusTarget = len(minusPool)
	}
	if len(plusPool) < plusTarget {
		res.Notes = append(res.Notes, Note{Kind: NotePlusShort, Want: plusTarget, Have: len(plusPool)})
		plusTarget = len(plusPool)
	}

	answerCap := 0
	if req.CapAnswers {
		answerCap = (req.Amount + 9) / 10
	}
	answerCounts := make(map[int]int)
	taken := make(map[int]bool, req.Amount)

	picked := make([]entry, 0, req.Amount)
	picked = draw(plusPool, plusTarget, answerCap, answerCounts, taken, picked)
	picked = draw(minusPool, minusTarget, answerCap, answerCounts, taken, picked)

	// Top up from whatever is left inside the window, mix-blind.
	if shortfall := req.Amount - len(picked); shortfall > 0 {
		picked = draw(eligible, shortfall, answerCap, answerCounts, taken, picked)
	}

	if len(picked) > req.Amount {
		picked = picked[:req.Amount]
	}

	res.Problems = make([]difficulty.Scored, 0, len(picked))
	for _, e := range picked {
		s := pool.items[e.idx]
		res.Problems = append(res.Problems, s)
		if s.Problem.Leading() == problem.OpSub {
			res.MinusCount++
		} else {
			res.PlusCount++
		}
	}
	if len(picked) < req.Amount {
		res.Notes = append(res.Notes, Note{Kind: NoteBatchShort, Want: req.Amount, Have: len(picked)})
	}

	pool.removeTaken(taken)

	return res
}

// quotas computes the per-operator targets for one round. BalanceHalves
// splits exactly in half with a random odd remainder; otherwise the
// subtraction quota is round(Amount × MinusPercent / 100), clamped to
// [0, Amount].
func quotas(req Request, r *rand.Rand) (minusTarget, plusTarget int) {
	if req.BalanceHalves {
		half := req.Amount / 2
		minusTarget, plusTarget = half, half
		if req.Amount%2 == 1 {
			if r.Intn(2) == 0 {
				plusTarget++
			} else {
				minusTarget++
			}
		}

		return minusTarget, plusTarget
	}

	minusTarget = int(math.Round(float64(req.Amount) * float64(req.MinusPercent) / 100))
	if minusTarget > req.Amount {
		minusTarget = req.Amount
	}
	if minusTarget < 0 {
		minusTarget = 0
	}

	return minusTarget, req.Amount - minusTarget
}

// draw scans from in order and appends up to quota fresh entries to
// picked, honoring the per-answer cap when answerCap > 0. Entries
// already taken by an earlier draw are skipped.
func draw(from []entry, quota, answerCap int, answerCounts map[int]int, taken map[int]bool, picked []entry) []entry {
	got := 0
	for _, e := range from {
		if got >= quota {
			break
		}
		if taken[e.idx] {
			continue
		}
		if answerCap > 0 && answerCounts[e.answer] >= answerCap {
			continue
		}
		taken[e.idx] = true
		answerCounts[e.answer]++
		picked = append(picked, e)
		got++
	}

	return picked
}
