// Package pattern defines the predicate model shared by discovery, code
// synthesis and chain evaluation.
package pattern

import (
	"glyphforge/grid"
)

// Kind tags the geometric rule family a Predicate belongs to.
type Kind int

const (
	// Fill matches the full H×W rectangle.
	Fill Kind = iota
	// Border matches the outline: row 0, row H-1, col 0, col W-1.
	Border
	// Diagonal matches {(i,i) : i in [0,min(H,W))}.
	Diagonal
	// AntiDiagonal matches {(i, m-1-i) : i in [0,m)}, m = min(H,W).
	AntiDiagonal
	// HorizontalLine matches one complete row.
	HorizontalLine
	// VerticalLine matches one complete column.
	VerticalLine
	// FilledRectangle matches a fully occupied bounding box.
	FilledRectangle
	// Checkerboard matches every cell of one (row+col) parity.
	Checkerboard
	// CoordinateSet is the always-matching fallback: an explicit enumeration.
	CoordinateSet
)

// kindNames holds the canonical snake_case tokens, indexed by Kind.
var kindNames = [...]string{
	"fill",
	"border",
	"diagonal",
	"anti_diagonal",
	"horizontal_line",
	"vertical_line",
	"filled_rectangle",
	"checkerboard",
	"coordinate_set",
}

// String returns the canonical snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Identifiers used inside predicate expressions and the emitted program.
// Discovery renders expressions over these names; codegen binds the two
// dimension names as integer constants.
const (
	RowVar    = "row"
	ColVar    = "col"
	DimHeight = "height"
	DimWidth  = "width"
)

// CoordinateSetExpr is the placeholder expression carried by a
// CoordinateSet predicate; the synthesizer replaces it with the expanded
// coordinate disjunction.
const CoordinateSetExpr = "(explicit coordinate set)"

// Confidence levels reported by discovery.
const (
	// ConfidenceExact marks an algebraically exact symbolic match.
	ConfidenceExact = 1.0
	// ConfidenceLiteral marks a match exact only for the current literal
	// dimensions.
	ConfidenceLiteral = 0.6
	// ConfidenceFallback marks the coordinate_set fallback.
	ConfidenceFallback = 0.0
)

// Predicate is one discovered rule: a boolean formula over row/col and the
// grid dimension symbols that holds exactly on the cells of one glyph.
type Predicate struct {
	// Kind tags the rule family.
	Kind Kind
	// Symbol is the glyph the rule explains.
	Symbol rune
	// Expression is the boolean formula over RowVar/ColVar/DimHeight/DimWidth
	// (CoordinateSetExpr for the fallback).
	Expression string
	// Params lists the dimension names (DimHeight, DimWidth) the expression
	// actually references; empty for the fallback.
	Params []string
	// IsScalable reports whether the expression stays correct when the grid
	// dimensions change, i.e. it is dimension-symbolic rather than baked to
	// literal numbers.
	IsScalable bool
	// Confidence is 1.0 for symbolic matches, lower for literal-only matches,
	// 0.0 for the fallback.
	Confidence float64
	// Operands carries kind-specific literals for chain evaluation:
	// HorizontalLine [row]; VerticalLine [col];
	// FilledRectangle [minRow, maxRowExcl, minCol, maxColExcl];
	// Checkerboard [parity].
	Operands []int
	// Coords is the explicit enumeration recorded by the fallback for the
	// synthesizer; nil for every other kind.
	Coords []grid.Coord
}

// AnalysisResult is the outcome of analyzing a whole grid: one predicate per
// distinct glyph in encounter order, plus advisory warnings.
type AnalysisResult struct {
	// Predicates holds one rule per glyph, in symbol-group encounter order.
	Predicates []Predicate
	// Warnings lists human-readable scalability advisories.
	Warnings []string
	// IsFullyParametric is the AND of all predicates' IsScalable.
	IsFullyParametric bool
}
