// Package matrix offers a dense row-major float64 matrix and the Jordan
// exchange kernel used to pivot simplex tableaux.
//
// The matrix package provides:
//
//   - Dense, a rectangular row-major matrix with bounds-checked At/Set.
//   - JordanExchange, one pivot step centred on a cell that returns a fresh
//     matrix and never mutates its input. The default ExchangeElimination
//     divides the elimination factor by the pivot; GaussJordanElimination
//     does not and always leaves a unit pivot column.
//   - Mul and ExchangeMatrix, the elementary matrix E with E·M equal to the
//     pivoted matrix.
//   - Validators and AllClose for shape checks and numeric comparisons.
//   - ToGonum/FromGonum bridges to gonum.org/v1/gonum/mat.
//
// The package knows nothing about linear programs; the tableau package maps
// LinearProgram values onto matrices and back.
package matrix
