package pattern

import (
	"fmt"

	"glyphforge/grid"
)

// shape bundles everything a tester needs: the glyph's coordinate set (as
// both ordered slice and lookup map), its size, and the grid dimensions.
type shape struct {
	symbol        rune
	coords        []grid.Coord
	count         int
	height, width int
}

// holds reports whether a coordinate belongs to the glyph's set. O(n).
// Testers only ever combine it with an exact count comparison, which makes
// every match two-way exact: right size plus full membership equals set
// equality.
func (s *shape) holds(test func(grid.Coord) bool) bool {
	for _, c := range s.coords {
		if !test(c) {
			return false
		}
	}

	return true
}

// tester attempts one rule family; ok is false when the set is not an exact
// match for that family.
type tester func(s *shape) (Predicate, bool)

// testers is the fixed priority order. The order is the only tie-break:
// a full H×H square satisfies both fill and filled_rectangle, and fill wins
// because it is tried first. The fallback is appended by Discover itself.
var testers = []tester{
	matchFill,
	matchBorder,
	matchDiagonal,
	matchAntiDiagonal,
	matchHorizontalLine,
	matchVerticalLine,
	matchFilledRectangle,
	matchCheckerboard,
}

// Discover finds the simplest exact rule for one glyph's coordinate set on
// an height×width grid. It is total: when no geometric tester matches, the
// coordinate_set fallback records the literal enumeration. Coordinates are
// assumed in-bounds for the stated dimensions (the grid container already
// checked them). Deterministic and idempotent.
// Complexity: O(n×detectorCount) time, O(n) memory.
func Discover(coords []grid.Coord, symbol rune, height, width int) Predicate {
	s := &shape{
		symbol: symbol,
		coords: coords,
		count:  len(coords),
		height: height,
		width:  width,
	}
	for _, match := range testers {
		if p, ok := match(s); ok {
			return p
		}
	}

	return fallback(s)
}

// matchFill: the set equals the full H×W rectangle.
func matchFill(s *shape) (Predicate, bool) {
	if s.count != s.height*s.width {
		return Predicate{}, false
	}

	return Predicate{
		Kind:       Fill,
		Symbol:     s.symbol,
		Expression: "1",
		IsScalable: true,
		Confidence: ConfidenceExact,
	}, true
}

// matchBorder: the set equals the outline (row 0, row H-1, col 0, col W-1).
func matchBorder(s *shape) (Predicate, bool) {
	h, w := s.height, s.width
	inner := 0
	if h > 2 && w > 2 {
		inner = (h - 2) * (w - 2)
	}
	if s.count != h*w-inner {
		return Predicate{}, false
	}
	onBorder := func(c grid.Coord) bool {
		return c.Row == 0 || c.Row == h-1 || c.Col == 0 || c.Col == w-1
	}
	if !s.holds(onBorder) {
		return Predicate{}, false
	}

	return Predicate{
		Kind:   Border,
		Symbol: s.symbol,
		Expression: fmt.Sprintf("%s == 0 || %s == %s-1 || %s == 0 || %s == %s-1",
			RowVar, RowVar, DimHeight, ColVar, ColVar, DimWidth),
		Params:     []string{DimHeight, DimWidth},
		IsScalable: true,
		Confidence: ConfidenceExact,
	}, true
}

// matchDiagonal: the set equals {(i,i) : i in [0,min(H,W))}.
func matchDiagonal(s *shape) (Predicate, bool) {
	if s.count != min(s.height, s.width) {
		return Predicate{}, false
	}
	if !s.holds(func(c grid.Coord) bool { return c.Row == c.Col }) {
		return Predicate{}, false
	}

	return Predicate{
		Kind:       Diagonal,
		Symbol:     s.symbol,
		Expression: fmt.Sprintf("%s == %s", RowVar, ColVar),
		IsScalable: true,
		Confidence: ConfidenceExact,
	}, true
}

// matchAntiDiagonal: the set equals {(i, m-1-i) : i in [0,m)}, m = min(H,W).
// The formula is height-indexed when H ≤ W and mirrors to width otherwise,
// which keeps it well-defined on non-square grids.
func matchAntiDiagonal(s *shape) (Predicate, bool) {
	h, w := s.height, s.width
	if s.count != min(h, w) {
		return Predicate{}, false
	}
	var on func(grid.Coord) bool
	var expr, dim string
	if h <= w {
		on = func(c grid.Coord) bool { return c.Row+c.Col == h-1 && c.Col < h }
		expr = fmt.Sprintf("%s + %s == %s-1 && %s < %s", RowVar, ColVar, DimHeight, ColVar, DimHeight)
		dim = DimHeight
	} else {
		on = func(c grid.Coord) bool { return c.Row+c.Col == w-1 && c.Row < w }
		expr = fmt.Sprintf("%s + %s == %s-1 && %s < %s", RowVar, ColVar, DimWidth, RowVar, DimWidth)
		dim = DimWidth
	}
	if !s.holds(on) {
		return Predicate{}, false
	}

	return Predicate{
		Kind:       AntiDiagonal,
		Symbol:     s.symbol,
		Expression: expr,
		Params:     []string{dim},
		IsScalable: true,
		Confidence: ConfidenceExact,
	}, true
}

// matchHorizontalLine: a single complete row. The row index is converted via
// symbolFor; a height-relative result keeps the rule scalable, a bare
// literal downgrades confidence.
func matchHorizontalLine(s *shape) (Predicate, bool) {
	if s.count != s.width {
		return Predicate{}, false
	}
	row := s.coords[0].Row
	if !s.holds(func(c grid.Coord) bool { return c.Row == row }) {
		return Predicate{}, false
	}

	return linePredicate(s, RowVar, row, s.height, DimHeight, HorizontalLine), true
}

// matchVerticalLine: a single complete column, symmetric to the horizontal
// case over columns and width.
func matchVerticalLine(s *shape) (Predicate, bool) {
	if s.count != s.height {
		return Predicate{}, false
	}
	col := s.coords[0].Col
	if !s.holds(func(c grid.Coord) bool { return c.Col == col }) {
		return Predicate{}, false
	}

	return linePredicate(s, ColVar, col, s.width, DimWidth, VerticalLine), true
}

// linePredicate renders the shared line rule "var == value" with value run
// through the value→symbol mapping against the crossing dimension.
func linePredicate(s *shape, axis string, value, size int, dim string, kind Kind) Predicate {
	sym, symbolic := symbolFor(value, size, dim)
	p := Predicate{
		Kind:       kind,
		Symbol:     s.symbol,
		Expression: fmt.Sprintf("%s == %s", axis, sym),
		IsScalable: symbolic,
		Confidence: ConfidenceExact,
		Operands:   []int{value},
	}
	if !symbolic {
		p.Confidence = ConfidenceLiteral
	}
	if referencesDim(sym, dim) {
		p.Params = []string{dim}
	}

	return p
}

// matchFilledRectangle: the bounding box is fully occupied. Each of the four
// bounds (minRow, maxRow+1, minCol, maxCol+1) is independently converted via
// the value→symbol mapping; one symbolic bound is enough to keep the rule
// scalable.
func matchFilledRectangle(s *shape) (Predicate, bool) {
	if s.count == 0 {
		return Predicate{}, false
	}
	minR, maxR := s.coords[0].Row, s.coords[0].Row
	minC, maxC := s.coords[0].Col, s.coords[0].Col
	for _, c := range s.coords {
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
	}
	if s.count != (maxR-minR+1)*(maxC-minC+1) {
		return Predicate{}, false
	}

	rowLo, loRowSym := symbolFor(minR, s.height, DimHeight)
	rowHi, hiRowSym := symbolFor(maxR+1, s.height, DimHeight)
	colLo, loColSym := symbolFor(minC, s.width, DimWidth)
	colHi, hiColSym := symbolFor(maxC+1, s.width, DimWidth)
	symbolic := loRowSym || hiRowSym || loColSym || hiColSym

	p := Predicate{
		Kind:   FilledRectangle,
		Symbol: s.symbol,
		Expression: fmt.Sprintf("%s >= %s && %s < %s && %s >= %s && %s < %s",
			RowVar, rowLo, RowVar, rowHi, ColVar, colLo, ColVar, colHi),
		IsScalable: symbolic,
		Confidence: ConfidenceExact,
		Operands:   []int{minR, maxR + 1, minC, maxC + 1},
	}
	if !(loRowSym && hiRowSym && loColSym && hiColSym) {
		p.Confidence = ConfidenceLiteral
	}
	if referencesDim(rowLo, DimHeight) || referencesDim(rowHi, DimHeight) {
		p.Params = append(p.Params, DimHeight)
	}
	if referencesDim(colLo, DimWidth) || referencesDim(colHi, DimWidth) {
		p.Params = append(p.Params, DimWidth)
	}

	return p, true
}

// matchCheckerboard: every coordinate shares one (row+col) parity and the
// count equals the number of grid cells of that parity (which is always
// within ±1 of ⌈H·W/2⌉ — on odd totals the two parities differ by one cell).
func matchCheckerboard(s *shape) (Predicate, bool) {
	if s.count == 0 {
		return Predicate{}, false
	}
	parity := (s.coords[0].Row + s.coords[0].Col) % 2
	if !s.holds(func(c grid.Coord) bool { return (c.Row+c.Col)%2 == parity }) {
		return Predicate{}, false
	}
	total := s.height * s.width
	cells := total / 2
	if parity == 0 {
		cells = (total + 1) / 2
	}
	if s.count != cells {
		return Predicate{}, false
	}

	return Predicate{
		Kind:       Checkerboard,
		Symbol:     s.symbol,
		Expression: fmt.Sprintf("(%s + %s) %% 2 == %d", RowVar, ColVar, parity),
		IsScalable: true,
		Confidence: ConfidenceExact,
		Operands:   []int{parity},
	}, true
}

// fallback records the literal coordinate enumeration. Always matches;
// confidence zero, never scalable.
func fallback(s *shape) Predicate {
	coords := make([]grid.Coord, len(s.coords))
	copy(coords, s.coords)

	return Predicate{
		Kind:       CoordinateSet,
		Symbol:     s.symbol,
		Expression: CoordinateSetExpr,
		Confidence: ConfidenceFallback,
		Coords:     coords,
	}
}

// referencesDim reports whether a rendered symbol expression mentions the
// dimension name (a bare "0" or literal does not).
func referencesDim(expr, dim string) bool {
	return len(expr) >= len(dim) && expr[:len(dim)] == dim
}
