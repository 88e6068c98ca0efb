// Package verify compares a candidate program's textual output against a
// grid's canonical rendering, byte-exactly, and reports every mismatch with
// its precise position.
//
// What:
//
//   - Validate strips exactly one trailing newline from the candidate text
//     (no other normalization — internal whitespace and case must match),
//     then diffs it against the grid's canonical rendering.
//   - The diff is padded and position-exact even when the two texts have
//     different dimensions: rows run to the larger line count, columns to
//     the larger line length, and a missing glyph on either side is treated
//     as the blank glyph.
//   - Report formats the result for humans: one confirmation line on
//     success; otherwise an itemized mismatch list capped at
//     Options.MaxDifferences (whitespace rendered as named tokens), followed
//     by a count of the remainder.
//
// Why:
//
//   - A malformed or empty candidate simply yields maximal differences, not
//     a fault — verification, like the rest of the pipeline, is total.
//
// Complexity:
//
//   - Validate: O(R×C) over the padded extents, Memory: O(differences).
//   - Report:   O(min(differences, MaxDifferences)).
//
// Errors: none — both operations are total.
package verify
