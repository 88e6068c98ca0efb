package pattern

import (
	"fmt"

	"glyphforge/grid"
)

// Analyze discovers one predicate per distinct glyph on the grid, in
// symbol-group encounter order, and aggregates scalability warnings:
// one advisory per non-scalable predicate, plus a single overall advisory
// when at least one glyph fell back to an explicit coordinate set.
// Pure and deterministic; a grid with no occupied cells yields an empty
// predicate list. Complexity: O(H×W×detectorCount).
func Analyze(g *grid.Grid) AnalysisResult {
	groups := g.CoordinatesBySymbol()
	res := AnalysisResult{
		Predicates:        make([]Predicate, 0, len(groups)),
		IsFullyParametric: true,
	}
	fellBack := false
	for _, group := range groups {
		p := Discover(group.Coords, group.Symbol, g.Height(), g.Width())
		res.Predicates = append(res.Predicates, p)
		if !p.IsScalable {
			res.IsFullyParametric = false
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"symbol %q: %s rule is fixed to the current %d×%d dimensions",
				p.Symbol, p.Kind, g.Height(), g.Width()))
		}
		if p.Kind == CoordinateSet {
			fellBack = true
		}
	}
	if fellBack {
		res.Warnings = append(res.Warnings,
			"some symbols have no closed-form rule; editing height or width will not rescale them")
	}

	return res
}
