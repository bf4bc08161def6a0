// Package matrix implements a dense float64 matrix with 1-based element
// access, zero-copy row/column vector views, elementary row operations,
// and the classical direct-solution algorithms built on them: Gaussian
// elimination, Gauss-Jordan elimination, Doolittle LU decomposition with
// partial pivoting, determinant, inverse, and linear-system solving.
//
// The matrix package provides:
//
//   - Constructors: New (zero), Identity, Constant, FromRowMajor, Random,
//     FromBuffer (ownership of the buffer transfers to the matrix).
//   - Structural predicates: IsSquare, IsIdentity, IsZero, IsDiagonal,
//     IsSymmetric, IsUpperTriangular, IsLowerTriangular, IsTriangular,
//     IsOrthogonal, IsInvolutory, IsInvertible.
//   - Arithmetic: Add, Subtract, ScaleBy, Multiply (naive O(n³)),
//     Transpose (stride swap, its own inverse, no element copied).
//   - Elementary row operations — MultiplyRow, SwapRows, AddMultipleOfRow —
//     the mutation primitives underneath elimination and decomposition.
//   - GaussianElimination to row-echelon form and GaussJordanElimination
//     to reduced row-echelon form, both with partial pivoting.
//   - LUDecompose producing an immutable LUDecomposition from which
//     determinant, permutation matrix, L, U, linear-system solutions and
//     the inverse derive without re-decomposing.
//
// Determinant and Invert dispatch on size: 2×2 and 3×3 use closed-form
// cofactor/adjugate formulas, triangular matrices use the diagonal
// product, and everything else goes through the LU decomposition.
//
// Aliasing contract: RowVector and ColumnVector return live views sharing
// the matrix's buffer. Writing through a view writes the matrix, and
// mutating the matrix is visible through previously extracted views.
// Clone severs all sharing. Matrices are not safe for concurrent
// mutation; all algorithms execute sequentially in specified index order.
//
// Singularity: elimination and decomposition fail with ErrSingularMatrix
// when the best available pivot's magnitude does not exceed
// PivotTolerance. This is a property of the data, distinct from the
// invalid-argument sentinels, so callers can report "no unique solution"
// separately from "bad call". Elimination mutates in place and may leave
// the matrix partially eliminated when a later pivot turns out singular;
// that is the documented contract of a progressive, column-by-column
// algorithm.
//
// Structural predicates compare exactly against 0.0 and 1.0, so entries
// carrying accumulated round-off will not satisfy them. This matches the
// historical behavior of the library and is deliberately not "fixed"
// here; tolerant comparison belongs to the caller.
package matrix
