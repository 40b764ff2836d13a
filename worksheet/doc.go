// Package worksheet renders selected problem batches into printable
// artifacts.
//
// What:
//
//   - RenderHTML writes an A4 print-ready page: a header with title,
//     subtitle and a free-text note line, a four-column problem grid
//     with blank answer slots, and a footer. Meta.ShowAnswers fills
//     the slots instead, producing an answer key.
//   - RenderText writes a terminal listing of statements with their
//     difficulty levels, for previewing a batch before printing.
//
// Why:
//
//   - The selection core imposes no format on output; this package is
//     the default assembler for the common "print and hand out" case.
//
// The HTML layout targets A4 portrait with browser print styles; all
// user-provided metadata is escaped by html/template.
package worksheet
