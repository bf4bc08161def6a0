package matrix

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ToreEA/linear-algebra/buffer"
	"github.com/ToreEA/linear-algebra/numfmt"
	"github.com/ToreEA/linear-algebra/vector"
)

// Matrix is a dense rows×cols container of float64 values with 1-based
// element access. It owns its buffer exclusively unless constructed via
// FromBuffer, in which case ownership of the supplied buffer transfers to
// the matrix. The row/column count changes only through Transpose, which
// swaps them.
type Matrix struct {
	rows, cols int
	elems      buffer.MatrixBuffer
}

// New returns a zero-initialized rows×cols matrix.
// Returns ErrInvalidDimension when either dimension is below 1.
func New(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimension)
	}

	return &Matrix{rows: rows, cols: cols, elems: buffer.NewMatrix(rows, cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.elems.Set(i, i, 1.0)
	}

	return m, nil
}

// Constant returns a rows×cols matrix with every entry set to value.
func Constant(rows, cols int, value float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Constant: %w", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.elems.Set(i, j, value)
		}
	}

	return m, nil
}

// FromRowMajor builds a rows×cols matrix from values listed row by row.
// Returns ErrInvalidDimension when len(values) != rows×cols.
func FromRowMajor(rows, cols int, values ...float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FromRowMajor: %w", err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("FromRowMajor: %d values for %dx%d: %w",
			len(values), rows, cols, ErrInvalidDimension)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.elems.Set(i, j, values[i*cols+j])
		}
	}

	return m, nil
}

// Random returns a rows×cols matrix with entries drawn uniformly from
// [min, max). A nil rng falls back to the shared global source.
// Randomness is a test-data collaborator only; no algorithm in this
// module depends on it.
func Random(rows, cols int, min, max float64, rng *rand.Rand) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.elems.Set(i, j, min+next()*(max-min))
		}
	}

	return m, nil
}

// FromBuffer wraps a pre-built buffer as a matrix without copying.
// Ownership transfers to the matrix; the caller must not keep mutating
// the buffer directly.
func FromBuffer(buf buffer.MatrixBuffer) (*Matrix, error) {
	if buf == nil {
		return nil, fmt.Errorf("FromBuffer: %w", ErrNilBuffer)
	}

	return &Matrix{rows: buf.Rows(), cols: buf.Cols(), elems: buf}, nil
}

// Rows returns the current number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the current number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at (row, col), both 1-based.
// Returns ErrIndexOutOfRange when either index is out of bounds.
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, err)
	}

	return m.elems.Get(row-1, col-1), nil
}

// SetAt stores value at (row, col), both 1-based.
func (m *Matrix) SetAt(row, col int, value float64) error {
	if err := m.checkIndex(row, col); err != nil {
		return fmt.Errorf("SetAt(%d,%d): %w", row, col, err)
	}
	m.elems.Set(row-1, col-1, value)

	return nil
}

// RowVector returns a live view of the given 1-based row. The view shares
// the matrix's storage: writes through it mutate the matrix and matrix
// mutations are visible through it.
func (m *Matrix) RowVector(row int) (*vector.Vector, error) {
	if row < 1 || row > m.rows {
		return nil, fmt.Errorf("RowVector(%d): %w", row, ErrIndexOutOfRange)
	}

	return vector.FromBuffer(m.elems.Row(row - 1))
}

// ColumnVector returns a live view of the given 1-based column, sharing
// the matrix's storage like RowVector.
func (m *Matrix) ColumnVector(col int) (*vector.Vector, error) {
	if col < 1 || col > m.cols {
		return nil, fmt.Errorf("ColumnVector(%d): %w", col, ErrIndexOutOfRange)
	}

	return vector.FromBuffer(m.elems.Column(col - 1))
}

// Clone returns a fully independent copy sharing no storage with the
// receiver.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, elems: m.elems.Clone()}
}

// Transpose reflects the matrix across its diagonal in place by swapping
// the buffer's stride roles; no element is copied. It is its own inverse:
// transposing twice restores the original addressing exactly, with no
// floating-point error introduced. Row and column counts swap.
func (m *Matrix) Transpose() {
	m.elems.Transpose()
	m.rows, m.cols = m.cols, m.rows
}

// Multiply returns the matrix product of the receiver and other using the
// naive O(rows·cols·n) algorithm: each result entry is the inner product
// of a receiver row view and an argument column view.
// Returns ErrDimensionMismatch unless m.Cols() == other.Rows().
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, fmt.Errorf("Multiply: %w", ErrNilMatrix)
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("Multiply: %dx%d by %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	result, err := New(m.rows, other.cols)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	for i := 1; i <= m.rows; i++ {
		rowA, _ := m.RowVector(i)
		for j := 1; j <= other.cols; j++ {
			colB, _ := other.ColumnVector(j)
			p, _ := rowA.InnerProduct(colB)
			result.elems.Set(i-1, j-1, p)
		}
	}

	return result, nil
}

// ScaleBy multiplies every entry by value, in place.
func (m *Matrix) ScaleBy(value float64) {
	m.Transform(func(_, _ int, v float64) float64 { return v * value })
}

// Add adds other to the receiver elementwise, in place.
// Returns ErrDimensionMismatch unless the sizes match exactly.
func (m *Matrix) Add(other *Matrix) error {
	if err := m.checkSameSize(other); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	m.Transform(func(row, col int, v float64) float64 {
		return v + other.elems.Get(row-1, col-1)
	})

	return nil
}

// Subtract subtracts other from the receiver elementwise, in place.
func (m *Matrix) Subtract(other *Matrix) error {
	if err := m.checkSameSize(other); err != nil {
		return fmt.Errorf("Subtract: %w", err)
	}
	m.Transform(func(row, col int, v float64) float64 {
		return v - other.elems.Get(row-1, col-1)
	})

	return nil
}

// Transform replaces each entry with fn(row, col, entry), visiting
// positions in row-major order with 1-based indices.
func (m *Matrix) Transform(fn func(row, col int, value float64) float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.elems.Set(i, j, fn(i+1, j+1, m.elems.Get(i, j)))
		}
	}
}

// ForEach visits each entry as (row, col, entry) in row-major order with
// 1-based indices.
func (m *Matrix) ForEach(fn func(row, col int, value float64)) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fn(i+1, j+1, m.elems.Get(i, j))
		}
	}
}

// AnyMatch reports whether pred holds for any entry, scanning in
// row-major order and stopping at the first match.
func (m *Matrix) AnyMatch(pred func(row, col int, value float64) bool) bool {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if pred(i+1, j+1, m.elems.Get(i, j)) {
				return true
			}
		}
	}

	return false
}

// Equal reports whether other has the same size and exactly equal entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}

	return !m.AnyMatch(func(row, col int, value float64) bool {
		return value != other.elems.Get(row-1, col-1)
	})
}

// String renders the matrix with the Pretty formatter, one line per row.
func (m *Matrix) String() string {
	return m.Format(numfmt.Pretty())
}

// Format renders the matrix using the given formatter, entries
// space-separated within a row and every row terminated by a newline.
func (m *Matrix) Format(f numfmt.Formatter) string {
	var sb strings.Builder
	m.ForEach(func(_, col int, value float64) {
		sb.WriteString(f(value))
		if col == m.cols {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	})

	return sb.String()
}

func (m *Matrix) checkIndex(row, col int) error {
	if row < 1 || row > m.rows || col < 1 || col > m.cols {
		return ErrIndexOutOfRange
	}

	return nil
}

func (m *Matrix) checkSameSize(other *Matrix) error {
	if other == nil {
		return ErrNilMatrix
	}
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("%dx%d and %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	return nil
}

func (m *Matrix) checkRow(row int) error {
	if row < 1 || row > m.rows {
		return ErrIndexOutOfRange
	}

	return nil
}
