package codegen

import (
	"fmt"
	"strings"

	"glyphforge/grid"
	"glyphforge/pattern"
)

// condition renders the branch condition for one predicate. Every kind but
// coordinate_set carries its boolean formula verbatim; the fallback expands
// into an explicit disjunction over its recorded cells. cont is the
// continuation indent used when the disjunction wraps onto further lines.
func condition(p pattern.Predicate, cont string) string {
	if p.Kind != pattern.CoordinateSet {
		return p.Expression
	}

	return coordinateCondition(p.Coords, cont)
}

// coordinateCondition expands an explicit coordinate list. Up to
// GroupThreshold cells it emits a flat disjunction, wrapped every WrapTerms
// terms; above the threshold it collapses columns sharing a row into one
// per-row clause, one clause per line. An empty list renders as the C false
// literal. Complexity: O(n).
func coordinateCondition(coords []grid.Coord, cont string) string {
	if len(coords) == 0 {
		return "0"
	}
	if len(coords) > GroupThreshold {
		return groupedCondition(coords, cont)
	}

	terms := make([]string, len(coords))
	for i, c := range coords {
		terms[i] = fmt.Sprintf("(%s == %d && %s == %d)",
			pattern.RowVar, c.Row, pattern.ColVar, c.Col)
	}

	var b strings.Builder
	for i, term := range terms {
		if i > 0 {
			if i%WrapTerms == 0 {
				b.WriteString(" ||\n" + cont)
			} else {
				b.WriteString(" || ")
			}
		}
		b.WriteString(term)
	}

	return b.String()
}

// groupedCondition emits one clause per distinct row:
// (row == r && col == c) for a lone column, or
// (row == r && (col == c1 || col == c2 || …)) for several.
// Rows keep their first-appearance order; within a row, columns keep the
// recorded (row-major) order.
func groupedCondition(coords []grid.Coord, cont string) string {
	rows := make([]int, 0)
	cols := make(map[int][]int)
	for _, c := range coords {
		if _, seen := cols[c.Row]; !seen {
			rows = append(rows, c.Row)
		}
		cols[c.Row] = append(cols[c.Row], c.Col)
	}

	clauses := make([]string, len(rows))
	for i, r := range rows {
		cs := cols[r]
		if len(cs) == 1 {
			clauses[i] = fmt.Sprintf("(%s == %d && %s == %d)",
				pattern.RowVar, r, pattern.ColVar, cs[0])
			continue
		}
		alts := make([]string, len(cs))
		for j, c := range cs {
			alts[j] = fmt.Sprintf("%s == %d", pattern.ColVar, c)
		}
		clauses[i] = fmt.Sprintf("(%s == %d && (%s))",
			pattern.RowVar, r, strings.Join(alts, " || "))
	}

	return strings.Join(clauses, " ||\n"+cont)
}

// escapeGlyph renders one glyph as the inside of a C character literal.
// Backslash, single quote, newline and tab become their standard escape
// sequences; everything else is a literal single-character token.
func escapeGlyph(r rune) string {
	switch r {
	case '\\':
		return `\\`
	case '\'':
		return `\'`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	default:
		return string(r)
	}
}
