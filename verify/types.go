// Package verify defines the validation result model and report options.
package verify

// Difference records one mismatched glyph position in the padded diff.
type Difference struct {
	// Row and Col locate the mismatch, zero-based.
	Row, Col int
	// Expected is the grid's glyph at this position (blank when the
	// expected text does not reach it).
	Expected rune
	// Actual is the candidate's glyph at this position (blank when the
	// candidate text does not reach it).
	Actual rune
}

// ValidationResult is the outcome of comparing candidate output against the
// canonical rendering.
type ValidationResult struct {
	// Valid is true when the two texts match exactly.
	Valid bool
	// Differences lists every mismatched position in row-major order; empty
	// when Valid.
	Differences []Difference
}

// DefaultMaxDifferences is the report's default mismatch cap.
const DefaultMaxDifferences = 10

// Options tunes report formatting.
type Options struct {
	// MaxDifferences caps the itemized mismatches in a report; any remainder
	// is summarized as a count.
	MaxDifferences int
}

// DefaultOptions returns the standard report settings: at most
// DefaultMaxDifferences itemized mismatches.
func DefaultOptions() Options {
	return Options{MaxDifferences: DefaultMaxDifferences}
}
