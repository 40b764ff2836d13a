// Package selector picks balanced worksheet batches from a scored
// problem pool under caller constraints, degrading gracefully when
// supply runs short.
//
// What:
//
//   - Request describes one selection round: batch size, inclusive
//     difficulty window (MaxLevel may be +Inf), a subtraction-led
//     percentage, and two independent toggles — a per-answer
//     frequency cap and exact half/half operator balancing.
//   - Pool is the consuming working set: problems allocated to a
//     batch are removed, so repeated selection never reuses one.
//   - Select filters, shuffles, partitions by leading operator,
//     draws per-operator quotas, tops up, and truncates to size.
//   - Batches runs Select repeatedly for multi-worksheet export.
//
// Why:
//
//   - Operator mix: an all-addition page drills nothing; quotas keep
//     the mix near the requested ratio.
//   - Answer cap: without it, easy shapes let one trivial answer
//     dominate the page; the cap bounds any answer to ceil(amount/10)
//     occurrences.
//
// Degradation (never an error):
//
//   - Undersupplied operator quota ⇒ shrink it and append a Note.
//   - Combined picks short of Amount ⇒ top up ignoring operator mix.
//   - Nothing inside the window ⇒ empty Result with a NoteEmpty.
//
// Determinism: shuffles use the injected *rand.Rand; nil selects a
// fixed default stream.
//
// Complexity: Select is O(pool) time, O(pool) space per round.
package selector
