package verify

import (
	"fmt"
	"strings"
)

// Report renders a ValidationResult for humans. Success is a single
// confirmation line. Failure itemizes the first opts.MaxDifferences
// mismatches as "Row r, Col c: expected X, got Y" — space, tab and newline
// appear as named tokens instead of raw whitespace — then summarizes any
// remainder as a count.
func Report(res ValidationResult, opts Options) string {
	if res.Valid {
		return "output matches the grid exactly"
	}

	limit := opts.MaxDifferences
	if limit <= 0 {
		limit = DefaultMaxDifferences
	}
	shown := res.Differences
	if len(shown) > limit {
		shown = shown[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "output differs from the grid in %d position(s):\n", len(res.Differences))
	for _, d := range shown {
		fmt.Fprintf(&b, "Row %d, Col %d: expected %s, got %s\n",
			d.Row, d.Col, glyphToken(d.Expected), glyphToken(d.Actual))
	}
	if rest := len(res.Differences) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "... and %d more difference(s)\n", rest)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// glyphToken renders one glyph for a report line: whitespace by name,
// everything else quoted.
func glyphToken(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '\t':
		return "tab"
	case '\n':
		return "newline"
	default:
		return fmt.Sprintf("'%c'", r)
	}
}
