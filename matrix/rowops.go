package matrix

import "fmt"

// Elementary row operations. These are the in-place mutation primitives
// underneath Gaussian elimination, Gauss-Jordan elimination and LU
// decomposition; the elimination loops restrict their column ranges for
// efficiency but never re-derive the row arithmetic elsewhere.

// MultiplyRow scales the given 1-based row by a nonzero constant, in
// place. Equivalent to left-multiplying by a scaling matrix.
// Returns ErrIndexOutOfRange or ErrZeroRowScale on bad input.
func (m *Matrix) MultiplyRow(row int, constant float64) error {
	if err := m.checkRow(row); err != nil {
		return fmt.Errorf("MultiplyRow(%d): %w", row, err)
	}
	if constant == 0.0 {
		return fmt.Errorf("MultiplyRow(%d): %w", row, ErrZeroRowScale)
	}
	for j := 0; j < m.cols; j++ {
		m.elems.Set(row-1, j, constant*m.elems.Get(row-1, j))
	}

	return nil
}

// SwapRows exchanges two 1-based rows in place. Equivalent to
// left-multiplying by a permutation matrix. Swapping a row with itself is
// a no-op.
func (m *Matrix) SwapRows(rowA, rowB int) error {
	if err := m.checkRow(rowA); err != nil {
		return fmt.Errorf("SwapRows(%d,%d): %w", rowA, rowB, err)
	}
	if err := m.checkRow(rowB); err != nil {
		return fmt.Errorf("SwapRows(%d,%d): %w", rowA, rowB, err)
	}
	for j := 0; j < m.cols; j++ {
		tmp := m.elems.Get(rowA-1, j)
		m.elems.Set(rowA-1, j, m.elems.Get(rowB-1, j))
		m.elems.Set(rowB-1, j, tmp)
	}

	return nil
}

// AddMultipleOfRow adds multiple×srcRow to dstRow in place, for distinct
// 1-based rows. Equivalent to left-multiplying by an elimination matrix.
// Returns ErrSameRow when dstRow == srcRow.
func (m *Matrix) AddMultipleOfRow(dstRow int, multiple float64, srcRow int) error {
	if err := m.checkRow(dstRow); err != nil {
		return fmt.Errorf("AddMultipleOfRow(%d,%d): %w", dstRow, srcRow, err)
	}
	if err := m.checkRow(srcRow); err != nil {
		return fmt.Errorf("AddMultipleOfRow(%d,%d): %w", dstRow, srcRow, err)
	}
	if dstRow == srcRow {
		return fmt.Errorf("AddMultipleOfRow(%d,%d): %w", dstRow, srcRow, ErrSameRow)
	}
	for j := 0; j < m.cols; j++ {
		m.elems.Set(dstRow-1, j, m.elems.Get(dstRow-1, j)+multiple*m.elems.Get(srcRow-1, j))
	}

	return nil
}
