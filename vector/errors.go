// Package vector: sentinel error set.
// All public operations return these sentinels on caller error and tests
// match them via errors.Is. Context is added at call sites with
// fmt.Errorf("Method: ...: %w", ErrX); the sentinels themselves stay bare.
package vector

import "errors"

var (
	// ErrNilVector indicates that a nil *Vector was passed where a value
	// is required.
	ErrNilVector = errors.New("vector: vector is nil")

	// ErrNilBuffer indicates that FromBuffer received a nil buffer.
	ErrNilBuffer = errors.New("vector: buffer is nil")

	// ErrInvalidDimension indicates that a requested dimension is below 1.
	ErrInvalidDimension = errors.New("vector: dimension must be 1 or higher")

	// ErrIndexOutOfRange indicates a 1-based index outside [1, dimension].
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates that two operands have different
	// dimensions where identical dimensions are required.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNotThreeDimensional indicates a cross product outside dimension 3.
	ErrNotThreeDimensional = errors.New("vector: cross product requires dimension 3")

	// ErrTooFewVectors indicates that Gram-Schmidt needs at least two
	// vectors to operate on.
	ErrTooFewVectors = errors.New("vector: need two or more vectors")
)
