// Package builder draws the canonical glyph patterns onto fresh grids —
// the library-side counterpart of the shape tools an interactive editor
// offers, and the workhorse behind the test suites, the benchmarks and the
// CLI sample command.
//
// The package offers one constructor per pattern family:
//
//   - Fill:           every cell of the H×W rectangle.
//   - Border:         the outline (row 0, row H-1, col 0, col W-1).
//   - Diagonal:       {(i,i) : i in [0,min(H,W))}.
//   - AntiDiagonal:   {(i, m-1-i) : i in [0,m)}, m = min(H,W).
//   - HorizontalLine: one complete row.
//   - VerticalLine:   one complete column.
//   - Rect:           a fully occupied bounding box (inclusive bounds).
//   - Checkerboard:   every cell of one (row+col) parity.
//   - Scatter:        an arbitrary coordinate list.
//
// Guarantees:
//
//   - Each constructor validates its parameters and wraps the sentinel
//     errors below with a method-name context token, so callers can both
//     errors.Is-match the class and read which constructor rejected what.
//   - Constructors never leave a partially drawn grid behind: validation
//     happens before the first write.
//
// Complexity: O(H×W) per constructor (O(H×W + n) for Scatter).
//
// Errors:
//
//   - grid.ErrBadDimensions: height or width not positive.
//   - ErrIndexOutOfRange: a row/column/bound parameter lies outside the grid.
//   - ErrBadParity: checkerboard parity is neither 0 nor 1.
//   - ErrBadBounds: rectangle bounds are inverted.
package builder
