// Package grid implements the H×W glyph container consumed by the
// discovery, synthesis and verification stages.
package grid

import (
	"strings"
)

// Grid is a finite H×W field of optional glyphs. Dimensions are fixed for
// the lifetime of the instance; cell contents are mutable through Set/Clear.
type Grid struct {
	height, width int
	cells         [][]cell
}

// New constructs an empty Grid of the given dimensions.
// Returns ErrBadDimensions if height or width is not positive.
// Complexity: O(H×W) time and memory.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([][]cell, height)
	for r := 0; r < height; r++ {
		cells[r] = make([]cell, width)
	}

	return &Grid{height: height, width: width, cells: cells}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Set writes symbol at (row,col), recording strokeID as its provenance.
// A later Set simply overwrites an earlier one; stroke precedence rules
// belong to the editing layer. Returns ErrOutOfBounds when (row,col) is
// outside the grid. Complexity: O(1).
func (g *Grid) Set(row, col int, symbol rune, strokeID int) error {
	if !g.InBounds(row, col) {
		return ErrOutOfBounds
	}
	g.cells[row][col] = cell{symbol: symbol, stroke: strokeID, occupied: true}

	return nil
}

// Clear empties the cell at (row,col).
// Returns ErrOutOfBounds when (row,col) is outside the grid. Complexity: O(1).
func (g *Grid) Clear(row, col int) error {
	if !g.InBounds(row, col) {
		return ErrOutOfBounds
	}
	g.cells[row][col] = cell{}

	return nil
}

// CellAt returns the glyph at (row,col) and whether the cell is occupied.
// Out-of-bounds positions report as unoccupied. Complexity: O(1).
func (g *Grid) CellAt(row, col int) (rune, bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}
	c := g.cells[row][col]

	return c.symbol, c.occupied
}

// StrokeAt returns the provenance of the cell at (row,col) and whether the
// cell is occupied. Unoccupied or out-of-bounds cells report NoStroke.
// Complexity: O(1).
func (g *Grid) StrokeAt(row, col int) (int, bool) {
	if !g.InBounds(row, col) {
		return NoStroke, false
	}
	c := g.cells[row][col]
	if !c.occupied {
		return NoStroke, false
	}

	return c.stroke, true
}

// CoordinatesBySymbol groups occupied cells by glyph.
// The scan is row-major; a glyph's group appears at the position of its
// first occurrence, and coordinates within a group keep scan order.
// This ordering is what makes downstream discovery deterministic.
// Complexity: O(H×W) time, O(occupied cells) memory.
func (g *Grid) CoordinatesBySymbol() []SymbolGroup {
	groups := make([]SymbolGroup, 0)
	index := make(map[rune]int)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			cl := g.cells[r][c]
			if !cl.occupied {
				continue
			}
			i, seen := index[cl.symbol]
			if !seen {
				i = len(groups)
				index[cl.symbol] = i
				groups = append(groups, SymbolGroup{Symbol: cl.symbol})
			}
			groups[i].Coords = append(groups[i].Coords, Coord{Row: r, Col: c})
		}
	}

	return groups
}

// Render produces the canonical text form: Height rows of exactly Width
// glyphs each, Blank for empty cells, joined by newlines without a trailing
// newline. Complexity: O(H×W).
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.width; c++ {
			cl := g.cells[r][c]
			if cl.occupied {
				b.WriteRune(cl.symbol)
			} else {
				b.WriteRune(Blank)
			}
		}
	}

	return b.String()
}

// Parse rebuilds a Grid from a canonical-style text. Lines become rows;
// width is the longest line's rune count and shorter lines are padded with
// empty cells; Blank glyphs parse as empty. One trailing newline is
// tolerated. Cells written by Parse carry NoStroke provenance.
// Returns ErrEmptyText when the text has no lines. Complexity: O(H×W).
func Parse(text string) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyText
	}
	lines := strings.Split(text, "\n")
	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	if width == 0 {
		return nil, ErrEmptyText
	}
	g, err := New(len(lines), width)
	if err != nil {
		return nil, err
	}
	for r, runes := range rows {
		for c, sym := range runes {
			if sym == Blank {
				continue
			}
			_ = g.Set(r, c, sym, NoStroke)
		}
	}

	return g, nil
}
