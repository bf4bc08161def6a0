package buffer

// strided is the single MatrixBuffer implementation: a flat float64 slice
// addressed as base + rowStride·row + colStride·col. Row-major and
// column-major layouts are just two stride assignments over the same code,
// and Transpose is a stride swap with no data movement.
type strided struct {
	rows, cols int
	values     []float64
	base       int
	rowStride  int
	colStride  int
}

// NewMatrix allocates a zeroed rows×cols buffer in row-major layout.
// Panics if rows or cols is not positive; public constructors in the
// matrix package validate dimensions before reaching this point.
// Complexity: O(rows·cols) for the zeroed allocation.
func NewMatrix(rows, cols int) MatrixBuffer {
	dimCheck("rows", rows)
	dimCheck("cols", cols)

	return &strided{
		rows:      rows,
		cols:      cols,
		values:    make([]float64, rows*cols),
		base:      0,
		rowStride: cols,
		colStride: 1,
	}
}

// NewColumnMajorMatrix allocates a zeroed rows×cols buffer in column-major
// layout. Addressing behaves identically to NewMatrix; only the memory
// order of elements differs.
func NewColumnMajorMatrix(rows, cols int) MatrixBuffer {
	dimCheck("rows", rows)
	dimCheck("cols", cols)

	return &strided{
		rows:      rows,
		cols:      cols,
		values:    make([]float64, rows*cols),
		base:      0,
		rowStride: 1,
		colStride: rows,
	}
}

// Get returns the value at (row, col).
func (b *strided) Get(row, col int) float64 {
	return b.values[b.addressOf(row, col)]
}

// Set stores value at (row, col).
func (b *strided) Set(row, col int, value float64) {
	b.values[b.addressOf(row, col)] = value
}

// Rows returns the current row count.
func (b *strided) Rows() int { return b.rows }

// Cols returns the current column count.
func (b *strided) Cols() int { return b.cols }

// Row returns a live view of row i over the shared backing slice.
// The view walks the current column stride, so it remains correct for
// buffers that have been transposed.
func (b *strided) Row(row int) VectorBuffer {
	boundsCheck("row", row, b.rows)

	return View(b.values, b.cols, b.base+row*b.rowStride, b.colStride)
}

// Column returns a live view of column j over the shared backing slice.
func (b *strided) Column(col int) VectorBuffer {
	boundsCheck("column", col, b.cols)

	return View(b.values, b.rows, b.base+col*b.colStride, b.rowStride)
}

// Clone deep-copies the backing slice, preserving the current addressing.
func (b *strided) Clone() MatrixBuffer {
	values := make([]float64, len(b.values))
	copy(values, b.values)

	return &strided{
		rows:      b.rows,
		cols:      b.cols,
		values:    values,
		base:      b.base,
		rowStride: b.rowStride,
		colStride: b.colStride,
	}
}

// Transpose exchanges the row and column stride roles in place.
// No element is moved; row count and column count swap along with the
// strides, so address(i,j) afterwards resolves to the old address(j,i).
func (b *strided) Transpose() {
	b.rowStride, b.colStride = b.colStride, b.rowStride
	b.rows, b.cols = b.cols, b.rows
}

func (b *strided) addressOf(row, col int) int {
	boundsCheck("row", row, b.rows)
	boundsCheck("column", col, b.cols)

	return b.base + b.rowStride*row + b.colStride*col
}
