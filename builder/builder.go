// Package builder implements the pattern constructors.
package builder

import (
	"errors"
	"fmt"

	"glyphforge/grid"
)

// Sentinel errors for builder parameter validation.
var (
	// ErrIndexOutOfRange indicates a row/column parameter outside the grid.
	ErrIndexOutOfRange = errors.New("builder: index out of range")
	// ErrBadParity indicates a checkerboard parity other than 0 or 1.
	ErrBadParity = errors.New("builder: parity must be 0 or 1")
	// ErrBadBounds indicates inverted rectangle bounds.
	ErrBadBounds = errors.New("builder: min bound exceeds max bound")
)

// Canonical constructor names, used to prefix errors with context.
const (
	MethodFill           = "Fill"
	MethodBorder         = "Border"
	MethodDiagonal       = "Diagonal"
	MethodAntiDiagonal   = "AntiDiagonal"
	MethodHorizontalLine = "HorizontalLine"
	MethodVerticalLine   = "VerticalLine"
	MethodRect           = "Rect"
	MethodCheckerboard   = "Checkerboard"
	MethodScatter        = "Scatter"
)

// BuilderStroke is the provenance recorded for builder-drawn cells.
const BuilderStroke = 0

// wrapf attaches the constructor name to a sentinel error.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// newGrid constructs the target grid, attaching method context on failure.
func newGrid(method string, height, width int) (*grid.Grid, error) {
	g, err := grid.New(height, width)
	if err != nil {
		return nil, wrapf(method, err)
	}

	return g, nil
}

// Fill draws symbol on every cell of an height×width grid.
func Fill(height, width int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodFill, height, width)
	if err != nil {
		return nil, err
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			_ = g.Set(r, c, symbol, BuilderStroke)
		}
	}

	return g, nil
}

// Border draws symbol on the outline: row 0, row H-1, col 0, col W-1.
func Border(height, width int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodBorder, height, width)
	if err != nil {
		return nil, err
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if r == 0 || r == height-1 || c == 0 || c == width-1 {
				_ = g.Set(r, c, symbol, BuilderStroke)
			}
		}
	}

	return g, nil
}

// Diagonal draws symbol on {(i,i) : i in [0,min(H,W))}.
func Diagonal(height, width int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodDiagonal, height, width)
	if err != nil {
		return nil, err
	}
	for i := 0; i < min(height, width); i++ {
		_ = g.Set(i, i, symbol, BuilderStroke)
	}

	return g, nil
}

// AntiDiagonal draws symbol on {(i, m-1-i) : i in [0,m)}, m = min(H,W).
func AntiDiagonal(height, width int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodAntiDiagonal, height, width)
	if err != nil {
		return nil, err
	}
	m := min(height, width)
	for i := 0; i < m; i++ {
		_ = g.Set(i, m-1-i, symbol, BuilderStroke)
	}

	return g, nil
}

// HorizontalLine draws symbol across one complete row.
// Returns ErrIndexOutOfRange when row lies outside [0,height).
func HorizontalLine(height, width, row int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodHorizontalLine, height, width)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= height {
		return nil, wrapf(MethodHorizontalLine, ErrIndexOutOfRange)
	}
	for c := 0; c < width; c++ {
		_ = g.Set(row, c, symbol, BuilderStroke)
	}

	return g, nil
}

// VerticalLine draws symbol down one complete column.
// Returns ErrIndexOutOfRange when col lies outside [0,width).
func VerticalLine(height, width, col int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodVerticalLine, height, width)
	if err != nil {
		return nil, err
	}
	if col < 0 || col >= width {
		return nil, wrapf(MethodVerticalLine, ErrIndexOutOfRange)
	}
	for r := 0; r < height; r++ {
		_ = g.Set(r, col, symbol, BuilderStroke)
	}

	return g, nil
}

// Rect fills the inclusive box [minRow,maxRow]×[minCol,maxCol] with symbol.
// Returns ErrBadBounds on inverted bounds, ErrIndexOutOfRange when a bound
// lies outside the grid.
func Rect(height, width, minRow, maxRow, minCol, maxCol int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodRect, height, width)
	if err != nil {
		return nil, err
	}
	if minRow > maxRow || minCol > maxCol {
		return nil, wrapf(MethodRect, ErrBadBounds)
	}
	if minRow < 0 || maxRow >= height || minCol < 0 || maxCol >= width {
		return nil, wrapf(MethodRect, ErrIndexOutOfRange)
	}
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			_ = g.Set(r, c, symbol, BuilderStroke)
		}
	}

	return g, nil
}

// Checkerboard draws symbol on every cell whose (row+col) parity matches.
// Returns ErrBadParity unless parity is 0 or 1.
func Checkerboard(height, width, parity int, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodCheckerboard, height, width)
	if err != nil {
		return nil, err
	}
	if parity != 0 && parity != 1 {
		return nil, wrapf(MethodCheckerboard, ErrBadParity)
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if (r+c)%2 == parity {
				_ = g.Set(r, c, symbol, BuilderStroke)
			}
		}
	}

	return g, nil
}

// Scatter draws symbol on an arbitrary coordinate list.
// Returns ErrIndexOutOfRange when any coordinate lies outside the grid.
func Scatter(height, width int, coords []grid.Coord, symbol rune) (*grid.Grid, error) {
	g, err := newGrid(MethodScatter, height, width)
	if err != nil {
		return nil, err
	}
	for _, c := range coords {
		if !g.InBounds(c.Row, c.Col) {
			return nil, wrapf(MethodScatter, ErrIndexOutOfRange)
		}
	}
	for _, c := range coords {
		_ = g.Set(c.Row, c.Col, symbol, BuilderStroke)
	}

	return g, nil
}
