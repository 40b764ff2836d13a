// Package pipeline wires the chainsum stages into one configurable
// run: generate → sample → report → select → render.
//
// What:
//
//   - Config collects every knob of a run (problem shape, sample
//     size, batch constraints, rendering metadata) with YAML file
//     loading and CHAINSUM_* environment overrides.
//   - Run executes the full pipeline and returns a Summary: the
//     difficulty distribution, per-batch selection results, and the
//     rendered worksheet documents.
//
// Why:
//
//   - One parameterized pipeline replaces per-mode script variants
//     (two-term only, multi-term, batch export) that would otherwise
//     duplicate the same flow.
//   - Keeping file I/O out: Run returns rendered bytes; writing them
//     anywhere is the caller's business (see cmd/chainsum).
//
// Degradation is data, not failure: short batches, an empty window or
// a starved sampler all surface inside the Summary. Run errors only on
// invalid configuration or a rendering fault.
package pipeline
