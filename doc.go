// Package chainsum generates chained addition/subtraction practice
// problems, ranks them by a pluggable difficulty model, and selects
// balanced worksheet batches under caller constraints.
//
// 🚀 What is chainsum?
//
//	A small, deterministic library for building arithmetic worksheets:
//		• problem/    — bounded random generation of "a + b - c = ?" chains
//		• difficulty/ — per-step difficulty scoring with a pluggable model
//		• sampler/    — rejection sampling + difficulty distribution report
//		• selector/   — constrained selection (window, operator mix, answer cap)
//		• worksheet/  — A4 print HTML and plain-text rendering
//		• pipeline/   — one configurable run: sample → select → render
//
// ✨ Why chainsum?
//
//   - Hard invariants — no running total ever leaves [0, limit]
//   - Deterministic — all randomness flows through injected, seeded RNGs
//   - Graceful degradation — shortfalls are reported as data, never panics
//   - Pure Go core — config and tests lean on a tiny, proven stack
//
// Quick example:
//
//	f, _ := problem.NewFactory(2, 100, problem.WithSeed(7))
//	pool, _ := sampler.Sample(f, difficulty.Default(), sampler.DefaultOptions())
//	res := selector.Select(selector.NewPool(pool), selector.Request{
//		Amount: 20, MinusPercent: 50, MaxLevel: math.Inf(1),
//	}, nil)
//
// See cmd/chainsum for the end-to-end worksheet CLI.
package chainsum
