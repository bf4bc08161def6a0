// Package vector implements a fixed-dimension float64 vector with in-place
// arithmetic, inner and cross products, projection, normalization, and the
// modified Gram-Schmidt orthogonalization process.
//
// The vector package provides:
//
//   - Constructors for standalone vectors (Of, Zero, Constant, Random,
//     WithDimension) and for live views over a matrix's row or column
//     storage (FromBuffer).
//   - 1-based element access with range checks (At, SetAt).
//   - In-place elementwise arithmetic (Add, Subtract, Scale, Divide) and
//     the metric operations Length, InnerProduct, CrossProduct,
//     ProjectOnto, Normalize.
//   - Orthogonalize and Orthonormalize: in-place modified Gram-Schmidt
//     over a set of vectors.
//
// Ownership and aliasing: a vector built by a standalone constructor owns
// its buffer exclusively. A vector built by FromBuffer over a matrix row
// or column view shares storage with that matrix — every mutation is
// visible on both sides. Vectors never resize after creation and are not
// safe for concurrent mutation.
//
// Predicates (IsZero, IsNormalized, IsOrthogonalTo, IsOrthonormalTo) use
// exact floating-point comparison, so values carrying accumulated round-off
// will not satisfy them. This matches the historical behavior of the
// library; callers needing tolerant checks should compare against an
// epsilon themselves.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrNilVector           if a required vector argument is nil.
//	– ErrNilBuffer           if FromBuffer receives a nil buffer.
//	– ErrInvalidDimension    if a requested dimension is < 1.
//	– ErrIndexOutOfRange     if an index is outside [1, dimension].
//	– ErrDimensionMismatch   if operand dimensions differ.
//	– ErrNotThreeDimensional if CrossProduct is applied outside dimension 3.
//	– ErrTooFewVectors       if Gram-Schmidt receives fewer than two vectors.
package vector
