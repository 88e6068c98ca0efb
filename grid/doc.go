// Package grid holds a finite H×W field of optional glyphs plus the write
// provenance (stroke id) of every occupied cell, and renders it canonically.
//
// What:
//
//   - Grid wraps an H×W cell field; dimensions are fixed at construction.
//   - Set/Clear mutate cells under bounds checks; CellAt/StrokeAt read them.
//   - CoordinatesBySymbol groups occupied cells by glyph in row-major scan
//     order; group order is the order in which glyphs are first encountered.
//   - Render produces the canonical text: each row exactly Width glyphs,
//     Blank for empty cells, rows joined by newlines, no trailing newline.
//   - Parse rebuilds a Grid from such a text (ragged lines are padded).
//
// Why:
//
//   - CoordinatesBySymbol is the sole input of predicate discovery.
//   - Render is the ground truth the output verifier compares against.
//   - The editing layer that decides who may write which cell lives outside
//     this package; Grid only records the latest write and its stroke id.
//
// Complexity:
//
//   - Set/Clear/CellAt/StrokeAt: O(1).
//   - CoordinatesBySymbol:       O(H×W), Memory: O(occupied cells).
//   - Render/Parse:              O(H×W).
//
// Errors:
//
//   - ErrBadDimensions: height or width is not positive.
//   - ErrOutOfBounds: a cell access lies outside [0,H)×[0,W).
//   - ErrEmptyText: Parse received a text with no lines.
package grid
