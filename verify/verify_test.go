package verify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"glyphforge/grid"
	"glyphforge/verify"
)

// TestValidate_ExactMatch: canonical rendering validates against itself,
// with and without the single tolerated trailing newline.
func TestValidate_ExactMatch(t *testing.T) {
	g, err := grid.Parse("##\n# ")
	require.NoError(t, err)

	require.True(t, verify.Validate(g, g.Render()).Valid)
	require.True(t, verify.Validate(g, g.Render()+"\n").Valid)
}

// TestValidate_NoOtherNormalization: internal whitespace and case must
// match exactly.
func TestValidate_NoOtherNormalization(t *testing.T) {
	g, err := grid.Parse("ab\ncd")
	require.NoError(t, err)

	res := verify.Validate(g, "AB\ncd")
	require.False(t, res.Valid)
	require.Len(t, res.Differences, 2)

	res = verify.Validate(g, "a b\ncd")
	require.False(t, res.Valid)
}

// TestValidate_EmptyCandidate: a malformed candidate yields maximal
// differences, never a fault.
func TestValidate_EmptyCandidate(t *testing.T) {
	g, err := grid.Parse("##\n##")
	require.NoError(t, err)

	res := verify.Validate(g, "")
	require.False(t, res.Valid)
	require.Len(t, res.Differences, 4)
}

// TestValidate_PaddedDiff: expected 3 lines of length 4 versus actual
// 2 lines of length 5 — the diff covers the padded 3×5 extent, missing
// glyphs on either side reading as blanks.
func TestValidate_PaddedDiff(t *testing.T) {
	g, err := grid.Parse("####\n####\n####")
	require.NoError(t, err)

	res := verify.Validate(g, "#####\n#####")
	require.False(t, res.Valid)

	want := []verify.Difference{
		{Row: 0, Col: 4, Expected: ' ', Actual: '#'},
		{Row: 1, Col: 4, Expected: ' ', Actual: '#'},
		{Row: 2, Col: 0, Expected: '#', Actual: ' '},
		{Row: 2, Col: 1, Expected: '#', Actual: ' '},
		{Row: 2, Col: 2, Expected: '#', Actual: ' '},
		{Row: 2, Col: 3, Expected: '#', Actual: ' '},
	}
	require.Equal(t, want, res.Differences)
}

// TestCompare_BothBlankPads: positions past both texts' extents agree on
// the blank glyph and produce no difference.
func TestCompare_BothBlankPads(t *testing.T) {
	res := verify.Compare("a \nb", "a\nb  ")
	require.True(t, res.Valid)
}

// TestReport_Success is a single confirmation line.
func TestReport_Success(t *testing.T) {
	out := verify.Report(verify.ValidationResult{Valid: true}, verify.DefaultOptions())
	require.Equal(t, "output matches the grid exactly", out)
}

// TestReport_CapAndTokens: itemized mismatches stop at the cap, whitespace
// renders as named tokens, and the remainder is summarized.
func TestReport_CapAndTokens(t *testing.T) {
	g, err := grid.New(2, 6)
	require.NoError(t, err)
	for c := 0; c < 6; c++ {
		require.NoError(t, g.Set(0, c, '#', 0))
		require.NoError(t, g.Set(1, c, '#', 0))
	}

	res := verify.Validate(g, "\t\n")
	require.False(t, res.Valid)
	require.Len(t, res.Differences, 12)

	out := verify.Report(res, verify.DefaultOptions())
	lines := strings.Split(out, "\n")
	// Header + 10 itemized + remainder summary.
	require.Len(t, lines, 12)
	require.Contains(t, lines[0], "12 position(s)")
	require.Equal(t, "Row 0, Col 0: expected '#', got tab", lines[1])
	require.Equal(t, "Row 0, Col 1: expected '#', got space", lines[2])
	require.Contains(t, lines[11], "2 more difference(s)")
}

// TestReport_CustomCap honors a caller-supplied limit.
func TestReport_CustomCap(t *testing.T) {
	res := verify.Compare("####", "    ")
	require.Len(t, res.Differences, 4)

	out := verify.Report(res, verify.Options{MaxDifferences: 2})
	require.Contains(t, out, "Row 0, Col 1")
	require.NotContains(t, out, "Row 0, Col 2")
	require.Contains(t, out, "2 more difference(s)")
}
