// Package grid defines core types and sentinel errors for the grid container.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive height or width.
	ErrBadDimensions = errors.New("grid: height and width must be positive")
	// ErrOutOfBounds indicates a cell access outside [0,H)×[0,W).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrEmptyText indicates Parse received a text with no lines.
	ErrEmptyText = errors.New("grid: text must contain at least one line")
)

// Blank is the glyph rendered for an empty cell. Every canonical rendering
// and every padded diff uses this single glyph for "nothing here".
const Blank = ' '

// NoStroke is the provenance recorded for cells never written by a stroke
// (e.g. cells created by Parse).
const NoStroke = -1

// Coord addresses a single cell: zero-based row and column, row-major.
type Coord struct {
	Row, Col int
}

// SymbolGroup pairs one glyph with the ordered list of cells it occupies.
// Coords are in row-major scan order.
type SymbolGroup struct {
	Symbol rune
	Coords []Coord
}

// cell is the internal per-position state: the glyph, the id of the stroke
// that wrote it, and whether the position is occupied at all.
type cell struct {
	symbol   rune
	stroke   int
	occupied bool
}
