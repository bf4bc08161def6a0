// Package buffer: addressing contracts shared by all backing stores.
package buffer

import "fmt"

// VectorBuffer is a fixed-length sequence of float64 values with
// bounds-independent addressing via base+stride arithmetic.
//
// Implementations either own their backing slice exclusively or view a
// window of a MatrixBuffer's slice; in the latter case every write is
// visible through the parent and every parent write is visible here.
type VectorBuffer interface {
	// Get returns the value at index i (0-based). Panics if i is out of range.
	Get(i int) float64

	// Set stores value at index i (0-based). Panics if i is out of range.
	Set(i int, value float64)

	// Len returns the number of addressable elements.
	Len() int

	// Clone returns an independent, compacted copy (base 0, stride 1)
	// sharing no storage with the receiver.
	Clone() VectorBuffer
}

// MatrixBuffer is a fixed-size two-dimensional store of float64 values.
//
// address(row,col) = base + rowStride·row + colStride·col is unique and
// in bounds for every valid (row, col) pair.
type MatrixBuffer interface {
	// Get returns the value at (row, col), both 0-based.
	// Panics if either index is out of range.
	Get(row, col int) float64

	// Set stores value at (row, col), both 0-based.
	// Panics if either index is out of range.
	Set(row, col int, value float64)

	// Rows returns the current number of rows.
	Rows() int

	// Cols returns the current number of columns.
	Cols() int

	// Row returns a live view of row i sharing the backing slice.
	Row(row int) VectorBuffer

	// Column returns a live view of column j sharing the backing slice.
	Column(col int) VectorBuffer

	// Clone returns an independent deep copy sharing no storage.
	Clone() MatrixBuffer

	// Transpose swaps the row and column stride roles in place.
	// Transposing twice restores the original addressing.
	Transpose()
}

// boundsCheck panics when index is outside [0, limit).
// Buffers sit below the error-returning public API; an invalid index here
// means the caller's own range checks were bypassed.
func boundsCheck(what string, index, limit int) {
	if index < 0 || index >= limit {
		panic(fmt.Sprintf("buffer: %s index %d out of range [0,%d)", what, index, limit))
	}
}

// dimCheck panics when a requested dimension is not positive.
func dimCheck(what string, n int) {
	if n < 1 {
		panic(fmt.Sprintf("buffer: %s must be 1 or higher, got %d", what, n))
	}
}
