// Package buffer provides the strided backing stores underneath Vector and
// Matrix.
//
// The buffer package provides:
//
//   - VectorBuffer: a flat sequence of float64 addressed as base + stride·i,
//     either owning its slice or viewing a window of another buffer's slice.
//   - MatrixBuffer: a two-dimensional store addressed as
//     base + rowStride·row + colStride·col, with zero-copy Row and Column
//     view extraction.
//
// Transpose discipline: a MatrixBuffer transposes by swapping its row and
// column stride roles in place. No element moves; views created afterwards
// use the current strides, and two transpositions restore the original
// addressing exactly.
//
// Aliasing contract: Row and Column return live views sharing the backing
// slice. Writing through a view writes through to the parent buffer, and
// vice versa. Clone is the only way to sever sharing.
//
// Indices are 0-based at this level; the 1-based convention lives in the
// vector and matrix packages. Out-of-range addressing is a programmer
// error, not caller input, so it panics rather than returning an error.
// Buffers are not safe for concurrent mutation.
package buffer
