// Package pattern discovers, for each glyph on a grid, the simplest exact
// geometric rule that characterizes the set of cells holding that glyph.
//
// What:
//
//   - Discover applies a fixed, ordered list of testers — fill, border,
//     diagonal, anti_diagonal, horizontal_line, vertical_line,
//     filled_rectangle, checkerboard — and returns the first exact match.
//     Exactness is two-way: every expected cell occupied, no stray cell
//     outside the expected set.
//   - When nothing matches, the coordinate_set fallback records the literal
//     cell enumeration; Discover therefore never fails.
//   - Analyze runs Discover over a whole grid's symbol groups and aggregates
//     scalability warnings.
//   - Matches/RenderChain evaluate a predicate chain cell-by-cell — the
//     reference executor behind the round-trip guarantee.
//
// Why:
//
//   - A rule parametric in height/width ("row == height-1") survives grid
//     resizes; a rule baked to literals ("row == 3") does not. The shared
//     value→symbol mapping is the single mechanism deciding which one a
//     tester produces, and Predicate.IsScalable/Confidence report the result.
//   - Priority order is the only disambiguator: a full H×H square matches
//     both fill and filled_rectangle; fill wins because it is tried first.
//
// Determinism:
//
//	Discover and Analyze are pure functions of the coordinate sets and the
//	grid dimensions — no hidden state, no randomness, no goroutines.
//	Repeated invocation on unchanged input yields bit-identical results,
//	cheap enough to re-run on every edit.
//
// Complexity:
//
//   - Discover:    O(n×detectorCount) for n coordinates, Memory: O(n).
//   - Analyze:     O(H×W×detectorCount), Memory: O(occupied cells).
//   - RenderChain: O(H×W×chainLength) plus O(n) per coordinate_set branch.
//
// Errors: none — every operation in this package is total.
package pattern
