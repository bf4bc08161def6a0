// Package matrix: sentinel error set and numeric policy constants.
// All algorithms return these sentinels and tests match them via
// errors.Is. Context is added at call sites with
// fmt.Errorf("Method: ...: %w", ErrX); the sentinels themselves stay bare.
package matrix

import "errors"

// PivotTolerance is the floor below which a pivot's absolute value is
// treated as zero during elimination and LU decomposition. Partial
// pivoting compares against this threshold rather than exact zero; a
// best-available pivot at or below it means the matrix is singular for
// the purposes of these algorithms.
const PivotTolerance = 1e-20

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed where a value
	// is required.
	ErrNilMatrix = errors.New("matrix: matrix is nil")

	// ErrNilBuffer indicates that FromBuffer received a nil buffer.
	ErrNilBuffer = errors.New("matrix: buffer is nil")

	// ErrInvalidDimension indicates that a requested row or column count
	// is below 1, or that a value sequence does not match rows×cols.
	ErrInvalidDimension = errors.New("matrix: invalid dimensions")

	// ErrIndexOutOfRange indicates a 1-based row or column index outside
	// the matrix bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g.
	// Add/Subtract with different shapes or Multiply where the receiver's
	// column count differs from the argument's row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrZeroRowScale indicates that MultiplyRow was asked to scale a row
	// by zero, which is not an elementary row operation.
	ErrZeroRowScale = errors.New("matrix: row scaling constant must be nonzero")

	// ErrSameRow indicates that AddMultipleOfRow was asked to add a row
	// to itself.
	ErrSameRow = errors.New("matrix: source and destination row must differ")

	// ErrSingularMatrix indicates that elimination or decomposition found
	// no pivot above PivotTolerance: the matrix is singular and the
	// operation has no unique result. A property of the data, not of the
	// call shape.
	ErrSingularMatrix = errors.New("matrix: matrix is singular")
)
