// Package verify implements the byte-exact output check closing the
// grid → discovery → synthesis pipeline.
package verify

import (
	"strings"

	"glyphforge/grid"
)

// Validate compares candidate program output against the grid's canonical
// rendering. Exactly one trailing newline is stripped from the candidate
// before comparison; nothing else is normalized. Pure and total: an empty
// or malformed candidate yields differences, never a fault.
// Complexity: O(R×C) over the padded line/column extents.
func Validate(g *grid.Grid, candidate string) ValidationResult {
	return Compare(g.Render(), strings.TrimSuffix(candidate, "\n"))
}

// Compare produces the padded, position-exact diff of two texts.
// Rows run to the larger line count with missing lines read as empty;
// columns run per row to the larger line length with missing glyphs read as
// the blank glyph. A Difference is recorded for every position where the
// two glyphs differ, in row-major order.
func Compare(expected, actual string) ValidationResult {
	expLines := strings.Split(expected, "\n")
	actLines := strings.Split(actual, "\n")

	rows := max(len(expLines), len(actLines))
	var diffs []Difference
	for r := 0; r < rows; r++ {
		var expRow, actRow []rune
		if r < len(expLines) {
			expRow = []rune(expLines[r])
		}
		if r < len(actLines) {
			actRow = []rune(actLines[r])
		}
		cols := max(len(expRow), len(actRow))
		for c := 0; c < cols; c++ {
			exp := glyphAt(expRow, c)
			act := glyphAt(actRow, c)
			if exp != act {
				diffs = append(diffs, Difference{Row: r, Col: c, Expected: exp, Actual: act})
			}
		}
	}

	return ValidationResult{Valid: len(diffs) == 0, Differences: diffs}
}

// glyphAt reads one glyph from a padded row: positions past the end are the
// blank glyph.
func glyphAt(row []rune, col int) rune {
	if col < len(row) {
		return row[col]
	}

	return grid.Blank
}
