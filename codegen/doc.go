// Package codegen compiles a chain of discovered predicates into a
// standalone, restricted-grammar C program that reprints the source grid.
//
// What:
//
//   - Generate emits a fixed-shape program: one main entry point, two
//     integer constants bound to the grid height and width, a doubly-nested
//     row/column loop, and inside it a single if/else-if/else chain with one
//     branch per predicate in discovery order. Each branch prints its
//     glyph via putchar; the trailing else prints the blank glyph.
//   - No other constructs are ever emitted — no arrays, no functions, no
//     auxiliary state. The restriction is a deliberate grammar contract,
//     not an optimization target.
//   - coordinate_set predicates expand into explicit disjunctions of
//     (row == r && col == c) terms: flat and line-wrapped below the grouping
//     threshold, collapsed into per-row clauses above it.
//
// Why:
//
//   - Branch order preserves predicate priority: the first-listed predicate
//     is tested first at runtime, so discovery's tie-breaks carry over
//     verbatim into the program.
//   - GeneratedCode.IsScalable reports whether editing the two dimension
//     constants rescales the drawing correctly; it is false as soon as any
//     predicate is baked to literal geometry, and an advisory warning is
//     attached when coordinates had to be enumerated.
//
// Determinism:
//
//	Generate is a pure function of the predicate chain and dimensions;
//	identical input yields byte-identical program text.
//
// Complexity:
//
//   - Generate: O(H×W + occupiedCellCount) time and memory.
//
// Errors: none — Generate is total.
package codegen
