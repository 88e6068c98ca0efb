package pattern

import (
	"strings"

	"glyphforge/grid"
)

// Matches evaluates one predicate at a single cell of an height×width grid.
// It is the reference semantics of the emitted branch conditions: for any
// chain produced by Discover, first-match evaluation over every cell
// reproduces the source grid exactly. Complexity: O(1), except O(n) for a
// coordinate_set predicate with n recorded cells.
func Matches(p Predicate, row, col, height, width int) bool {
	switch p.Kind {
	case Fill:
		return true
	case Border:
		return row == 0 || row == height-1 || col == 0 || col == width-1
	case Diagonal:
		return row == col
	case AntiDiagonal:
		if height <= width {
			return row+col == height-1 && col < height
		}

		return row+col == width-1 && row < width
	case HorizontalLine:
		return row == p.Operands[0]
	case VerticalLine:
		return col == p.Operands[0]
	case FilledRectangle:
		return row >= p.Operands[0] && row < p.Operands[1] &&
			col >= p.Operands[2] && col < p.Operands[3]
	case Checkerboard:
		return (row+col)%2 == p.Operands[0]
	case CoordinateSet:
		for _, c := range p.Coords {
			if c.Row == row && c.Col == col {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// RenderChain evaluates a predicate chain cell-by-cell over
// [0,height)×[0,width) in chain order — first match prints its glyph, no
// match prints the blank glyph — and returns the resulting text in the
// grid's canonical form. This mirrors exactly what the synthesized program
// does at runtime. Complexity: O(H×W×chainLength).
func RenderChain(preds []Predicate, height, width int) string {
	var b strings.Builder
	b.Grow(height * (width + 1))
	for row := 0; row < height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < width; col++ {
			glyph := rune(grid.Blank)
			for _, p := range preds {
				if Matches(p, row, col, height, width) {
					glyph = p.Symbol
					break
				}
			}
			b.WriteRune(glyph)
		}
	}

	return b.String()
}
