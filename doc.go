// Package linearalgebra is a dense linear-algebra kernel: vector and
// matrix primitives plus the classical direct-solution algorithms built
// on them.
//
// 🚀 What is linear-algebra?
//
//	A small, deterministic, pure-Go library providing:
//		• Strided storage buffers with zero-copy row/column views
//		• Vectors: arithmetic, inner/cross product, projection,
//		  normalization, modified Gram-Schmidt orthogonalization
//		• Matrices: structural predicates, transpose without copying,
//		  naive multiply, elementary row operations
//		• Gaussian and Gauss-Jordan elimination with partial pivoting
//		• Doolittle LU decomposition: determinant, inverse, linear solve
//
// ✨ Why choose it?
//
//   - Exact, deterministic results – fixed loop orders, no hidden
//     parallelism, the same input always produces the same output
//   - Explicit contracts – sentinel errors for caller mistakes, a
//     distinct singular-matrix error for data that has no unique solution
//   - Pure Go – no cgo, no runtime dependencies
//
// Everything is organized under four subpackages:
//
//	buffer/ — strided backing stores; row/column views share storage
//	vector/ — fixed-dimension vectors and the Gram-Schmidt process
//	matrix/ — dense matrices, elimination and LU decomposition
//	numfmt/ — display-only number formatting
//
// Scope: small-to-medium dense matrices, direct methods only. No sparse
// storage, no iterative or approximate solvers, no parallel execution,
// no arbitrary precision, no eigenvalue computation.
package linearalgebra
