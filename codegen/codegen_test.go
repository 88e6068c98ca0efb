package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"glyphforge/codegen"
	"glyphforge/grid"
	"glyphforge/pattern"
)

// TestGenerate_ProgramShape checks the fixed grammar: includes, two
// dimension constants, the nested loop, one branch per predicate in order,
// and the trailing blank-glyph else.
func TestGenerate_ProgramShape(t *testing.T) {
	preds := []pattern.Predicate{
		{Kind: pattern.Diagonal, Symbol: 'X', Expression: "row == col", IsScalable: true},
		{Kind: pattern.Border, Symbol: '#', Expression: "row == 0 || row == height-1 || col == 0 || col == width-1", IsScalable: true},
	}
	out := codegen.Generate(preds, 6, 4)

	require.True(t, strings.HasPrefix(out.Code, "#include <stdio.h>\n"))
	require.Contains(t, out.Code, "int main(void) {")
	require.Contains(t, out.Code, "const int height = 6;")
	require.Contains(t, out.Code, "const int width = 4;")
	require.Contains(t, out.Code, "for (int row = 0; row < height; row++) {")
	require.Contains(t, out.Code, "for (int col = 0; col < width; col++) {")
	require.Contains(t, out.Code, "if (row == col) {")
	require.Contains(t, out.Code, "} else if (row == 0 || row == height-1 || col == 0 || col == width-1) {")
	require.Contains(t, out.Code, "putchar('X');")
	require.Contains(t, out.Code, "putchar('#');")
	require.Contains(t, out.Code, "} else {")
	require.Contains(t, out.Code, "putchar(' ');")

	// Branch order equals predicate order: X is tested before #.
	require.Less(t, strings.Index(out.Code, "putchar('X');"), strings.Index(out.Code, "putchar('#');"))

	require.Equal(t, map[string]int{"height": 6, "width": 4}, out.Params)
	require.True(t, out.IsScalable)
	require.Empty(t, out.Warnings)
}

// TestGenerate_EmptyChain: a blank grid compiles to an unconditional blank
// print.
func TestGenerate_EmptyChain(t *testing.T) {
	out := codegen.Generate(nil, 2, 3)
	require.NotContains(t, out.Code, "if (")
	require.Contains(t, out.Code, "putchar(' ');")
	require.True(t, out.IsScalable)
}

// TestGenerate_FlatDisjunction: small coordinate sets expand flat, wrapped
// after every 5 terms.
func TestGenerate_FlatDisjunction(t *testing.T) {
	coords := make([]grid.Coord, 7)
	for i := range coords {
		coords[i] = grid.Coord{Row: 0, Col: i}
	}
	// A deliberately raw fallback predicate (7 ≤ grouping threshold).
	p := pattern.Predicate{Kind: pattern.CoordinateSet, Symbol: '*', Expression: pattern.CoordinateSetExpr, Coords: coords}
	out := codegen.Generate([]pattern.Predicate{p}, 8, 8)

	require.Contains(t, out.Code, "(row == 0 && col == 0) || (row == 0 && col == 1)")
	// 7 terms wrap once: 5 on the first line, 2 on the continuation.
	require.Contains(t, out.Code, "(row == 0 && col == 4) ||\n")
	require.NotContains(t, out.Code, "(col == ")
	require.Equal(t, 7, strings.Count(out.Code, "(row == 0 && col =="))
}

// TestGenerate_RowGrouping: 25 coordinates across exactly 3 rows collapse
// into 3 row-grouped clauses instead of 25 flat terms.
func TestGenerate_RowGrouping(t *testing.T) {
	var coords []grid.Coord
	for _, r := range []int{0, 2, 4} {
		for c := 0; c < 9; c++ {
			if len(coords) < 25 {
				coords = append(coords, grid.Coord{Row: r, Col: c})
			}
		}
	}
	require.Len(t, coords, 25)
	p := pattern.Predicate{Kind: pattern.CoordinateSet, Symbol: '*', Expression: pattern.CoordinateSetExpr, Coords: coords}
	out := codegen.Generate([]pattern.Predicate{p}, 6, 9)

	require.Equal(t, 3, strings.Count(out.Code, "(row == "))
	require.Contains(t, out.Code, "(row == 0 && (col == 0 || col == 1")
	require.Contains(t, out.Code, "(row == 4 && (col == ")
}

// TestGenerate_Escaping: backslash, quote, newline and tab glyphs become C
// escape sequences inside the character literal.
func TestGenerate_Escaping(t *testing.T) {
	cases := []struct {
		name    string
		symbol  rune
		literal string
	}{
		{"Backslash", '\\', `putchar('\\');`},
		{"Quote", '\'', `putchar('\'');`},
		{"Newline", '\n', `putchar('\n');`},
		{"Tab", '\t', `putchar('\t');`},
		{"Plain", 'Z', `putchar('Z');`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := pattern.Predicate{Kind: pattern.Fill, Symbol: tc.symbol, Expression: "1", IsScalable: true}
			out := codegen.Generate([]pattern.Predicate{p}, 2, 2)
			require.Contains(t, out.Code, tc.literal)
		})
	}
}

// TestGenerate_ScalabilityMetadata: any coordinate_set predicate pins the
// program to its literal dimensions and attaches the advisory.
func TestGenerate_ScalabilityMetadata(t *testing.T) {
	preds := []pattern.Predicate{
		{Kind: pattern.Fill, Symbol: '#', Expression: "1", IsScalable: true},
		{Kind: pattern.CoordinateSet, Symbol: '*', Expression: pattern.CoordinateSetExpr,
			Coords: []grid.Coord{{Row: 1, Col: 1}}},
	}
	out := codegen.Generate(preds, 3, 3)
	require.False(t, out.IsScalable)
	require.Len(t, out.Warnings, 1)
	require.Contains(t, out.Warnings[0], "will not scale")

	// A literal (but closed-form) rule loses scalability without the
	// enumeration advisory.
	literal := []pattern.Predicate{
		{Kind: pattern.HorizontalLine, Symbol: '-', Expression: "row == 5", Operands: []int{5}},
	}
	out = codegen.Generate(literal, 9, 4)
	require.False(t, out.IsScalable)
	require.Empty(t, out.Warnings)
}

// TestGenerate_Deterministic: byte-identical output on unchanged input.
func TestGenerate_Deterministic(t *testing.T) {
	preds := []pattern.Predicate{
		{Kind: pattern.Checkerboard, Symbol: '#', Expression: "(row + col) % 2 == 0", IsScalable: true, Operands: []int{0}},
	}
	first := codegen.Generate(preds, 5, 5)
	second := codegen.Generate(preds, 5, 5)
	require.Equal(t, first, second)
}
