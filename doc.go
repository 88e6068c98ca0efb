// Package glyphforge turns finite 2D character grids into minimal,
// restricted-grammar programs that reproduce those grids exactly — and
// mechanically proves that they do.
//
// 🚀 What is glyphforge?
//
//	A pure, deterministic three-stage pipeline:
//		• pattern  — for every symbol on the grid, discover the simplest exact
//		  geometric rule (fill, border, diagonals, lines, rectangles,
//		  checkerboards) that characterizes its cells, falling back to an
//		  explicit coordinate enumeration when no closed form fits
//		• codegen  — compile the discovered rules into a fixed-shape C program:
//		  two dimension constants, one doubly-nested loop, one if/else-if chain
//		• verify   — byte-exact comparison of a candidate program's output
//		  against the grid's canonical rendering, with a padded positional diff
//
// ✨ Why choose glyphforge?
//
//   - Total by construction – discovery never fails; unmatched symbols degrade
//     gracefully to coordinate sets instead of raising faults
//   - Deterministic – identical input yields bit-identical output, cheap enough
//     to re-run on every edit
//   - Scalability-aware – rules parametric in height/width are flagged, so
//     resizing a grid regenerates correct code; literal rules carry warnings
//   - Pure Go library – no hidden state, no side effects, no goroutines
//
// Everything is organized under five packages plus a CLI:
//
//	grid/     — H×W symbol container: bounds-checked cells, stroke provenance,
//	            row-major symbol grouping, canonical text rendering
//	pattern/  — ordered exact testers, the value→symbol mapping, whole-grid
//	            analysis, and reference chain evaluation
//	codegen/  — restricted-grammar C emission with scalability metadata
//	verify/   — padded positional diff and capped mismatch reports
//	builder/  — ready-made pattern grids for tests, benchmarks and demos
//	cmd/glyphforge — analyze, generate, preview, verify, sample
//
// Quick ASCII example:
//
//	#####        if (row == 0 || row == height-1 ||
//	#   #            col == 0 || col == width-1)  → putchar('#');
//	#####        else                             → putchar(' ');
//
//	a 3×5 border collapses to a single parametric rule.
//
// Dive into the per-package doc.go files for contracts, complexity notes and
// worked examples.
package glyphforge
