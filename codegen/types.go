// Package codegen defines the generated-program model and the emission
// constants of the restricted grammar.
package codegen

// GeneratedCode is the synthesizer's output: the program text plus the
// metadata the surrounding tooling needs to judge it.
type GeneratedCode struct {
	// Code is the complete C program text.
	Code string
	// Params maps the dimension constant names emitted as literals in the
	// program ("height", "width") to their integer values.
	Params map[string]int
	// Warnings lists advisory notes accumulated during synthesis.
	Warnings []string
	// IsScalable is the AND of all predicate scalability: true only when
	// editing the dimension constants rescales the drawing correctly.
	IsScalable bool
}

// Emission constants of the restricted grammar.
const (
	// GroupThreshold is the coordinate count above which a coordinate_set
	// condition is grouped by row instead of emitted as a flat disjunction.
	GroupThreshold = 20
	// WrapTerms is the number of flat disjunction terms per emitted line.
	WrapTerms = 5
	// indent is one level of program indentation.
	indent = "    "
)
