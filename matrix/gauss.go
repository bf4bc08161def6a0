package matrix

import (
	"fmt"
	"math"
)

// GaussianElimination reduces the matrix to row-echelon form in place
// using elementary row operations with partial pivoting.
//
// For each pivot column k the rows k..rows are scanned for the entry of
// maximum absolute value (strictly-greater comparison, so ties keep the
// first maximal row encountered); that row is swapped into position k and
// every row below has multiplier·(row k) subtracted, with the eliminated
// cell set to exactly 0 rather than computed. Partial pivoting bounds the
// multipliers by 1 in magnitude, containing round-off growth from small
// pivots.
//
// Fails with ErrSingularMatrix when the best available pivot's magnitude
// does not exceed PivotTolerance, leaving the matrix partially eliminated.
// Does not back-substitute; see GaussJordanElimination for reduced
// row-echelon form.
//
// Complexity: O(min(rows,cols)·rows·cols).
func (m *Matrix) GaussianElimination() error {
	minDim := m.rows
	if m.cols < minDim {
		minDim = m.cols
	}

	for k := 1; k <= minDim; k++ {
		iMax, err := m.partialPivotRow(k)
		if err != nil {
			return fmt.Errorf("GaussianElimination: column %d: %w", k, err)
		}
		if k != iMax {
			_ = m.SwapRows(k, iMax)
		}

		// Eliminate below the pivot. This is AddMultipleOfRow(i, -multiplier, k)
		// restricted to columns right of k, with the known-zero cell written
		// directly instead of computed.
		for i := k + 1; i <= m.rows; i++ {
			multiplier := m.elems.Get(i-1, k-1) / m.elems.Get(k-1, k-1)
			for j := k + 1; j <= m.cols; j++ {
				m.elems.Set(i-1, j-1, m.elems.Get(i-1, j-1)-m.elems.Get(k-1, j-1)*multiplier)
			}
			m.elems.Set(i-1, k-1, 0.0)
		}
	}

	return nil
}

// GaussJordanElimination reduces the matrix to reduced row-echelon form in
// place: Gaussian elimination, then each pivot row normalized so its pivot
// is exactly 1, then back-elimination zeroing everything above each pivot.
//
// The pivot cell is assigned 1.0 directly rather than divided by itself,
// and eliminated cells are assigned 0.0 directly, so the pivot positions
// carry no round-off. Fails with ErrSingularMatrix under the same
// conditions as GaussianElimination.
func (m *Matrix) GaussJordanElimination() error {
	if err := m.GaussianElimination(); err != nil {
		return fmt.Errorf("GaussJordanElimination: %w", err)
	}

	minDim := m.rows
	if m.cols < minDim {
		minDim = m.cols
	}

	// Normalize each pivot row: MultiplyRow restricted to the columns right
	// of the pivot, with the pivot cell written as exactly 1.
	for k := 1; k <= minDim; k++ {
		if pivot := m.elems.Get(k-1, k-1); pivot != 1.0 {
			multiplier := 1 / pivot
			for j := k + 1; j <= m.cols; j++ {
				m.elems.Set(k-1, j-1, m.elems.Get(k-1, j-1)*multiplier)
			}
			m.elems.Set(k-1, k-1, 1.0)
		}
	}

	// Back-eliminate from the last pivot to the first, zeroing the column
	// above each pivot.
	for k := minDim; k > 1; k-- {
		for i := k - 1; i >= 1; i-- {
			multiplier := m.elems.Get(i-1, k-1)
			for j := k + 1; j <= m.cols; j++ {
				m.elems.Set(i-1, j-1, m.elems.Get(i-1, j-1)-multiplier*m.elems.Get(k-1, j-1))
			}
			m.elems.Set(i-1, k-1, 0.0)
		}
	}

	return nil
}

// partialPivotRow returns the 1-based row in [k, rows] holding the entry
// of maximum absolute value in column k. The strictly-greater comparison
// makes the first maximal row win ties. Returns ErrSingularMatrix when
// that maximum does not exceed PivotTolerance.
func (m *Matrix) partialPivotRow(k int) (int, error) {
	iMax := k
	maxAbs := math.Abs(m.elems.Get(k-1, k-1))

	for i := k + 1; i <= m.rows; i++ {
		if abs := math.Abs(m.elems.Get(i-1, k-1)); abs > maxAbs {
			maxAbs = abs
			iMax = i
		}
	}

	if maxAbs <= PivotTolerance {
		return 0, ErrSingularMatrix
	}

	return iMax, nil
}
