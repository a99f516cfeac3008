// Package matrix provides the distance provider used by the annealer.
//
// The matrix package offers:
//
//   - Matrix, a bounds-checked interface over a two-dimensional float64 table.
//   - Dense, a row-major implementation that rejects NaN/Inf on Set.
//   - Distance builders: NewEuclidean for planar points, NewGeodesic for
//     latitude/longitude pairs (great-circle metres), NewDenseFromRows for
//     a precomputed table.
//   - Validators returning sentinel errors (ValidateDistance checks shape,
//     finiteness, non-negativity, zero diagonal and symmetry in one pass).
//
// Matrices are built once and read-only afterwards; all builders produce
// exactly symmetric output by computing each unordered pair once.
package matrix
