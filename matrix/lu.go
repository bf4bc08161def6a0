package matrix

import (
	"fmt"

	"github.com/ToreEA/linear-algebra/vector"
)

// LUDecomposition is the immutable result of a Doolittle decomposition
// with partial pivoting: P·A = L·U.
//
// The compact lu matrix packs both factors: the upper triangle including
// the diagonal is U; the strict lower triangle is L, whose unit diagonal
// is implicit and not stored. pi maps output row i to original row pi[i]
// and is always a permutation of [0..n). sign is the determinant sign
// (±1) accumulated from row swaps.
//
// A result is produced once by LUDecompose and read-only thereafter;
// determinant, permutation matrix, L, U, linear-system solutions and the
// inverse all derive from it without re-decomposing.
type LUDecomposition struct {
	lu   *Matrix
	pi   []int
	sign float64
}

// LUDecompose factors a square matrix as P·A = L·U using the Doolittle
// algorithm with partial pivoting. The receiver is not modified; the
// algorithm works on a private copy.
//
// For each k: the pivot row is the one with the largest magnitude in
// column k at or below the diagonal (same PivotTolerance singularity
// guard as Gaussian elimination). A swap updates pi and flips the
// determinant sign. Row k of U then accumulates
// LU[k][j] -= Σ_{p<k} LU[k][p]·LU[p][j] with no division (U's diagonal is
// not normalized), and column k of L accumulates
// LU[i][k] = (LU[i][k] - Σ_{p<k} LU[i][p]·LU[p][k]) / LU[k][k] with L's
// unit diagonal left implicit.
//
// Returns ErrNonSquare for non-square input and ErrSingularMatrix when no
// acceptable pivot exists. Cost: 2n³/3 floating-point operations.
func (m *Matrix) LUDecompose() (*LUDecomposition, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("LUDecompose: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	n := m.rows
	lu := m.Clone()

	pi := make([]int, n)
	for i := range pi {
		pi[i] = i
	}
	sign := 1.0

	for k := 0; k < n; k++ {
		k0, err := lu.partialPivotRow(k + 1)
		if err != nil {
			return nil, fmt.Errorf("LUDecompose: column %d: %w", k+1, err)
		}
		k0--

		if k != k0 {
			pi[k], pi[k0] = pi[k0], pi[k]
			_ = lu.SwapRows(k+1, k0+1)
			sign = -sign
		}

		// Row k of U; the already-finalized part of L/U feeds the sums.
		for j := k; j < n; j++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				sum += lu.elems.Get(k, p) * lu.elems.Get(p, j)
			}
			lu.elems.Set(k, j, lu.elems.Get(k, j)-sum)
		}

		// Column k of L below the diagonal.
		for i := k + 1; i < n; i++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				sum += lu.elems.Get(i, p) * lu.elems.Get(p, k)
			}
			lu.elems.Set(i, k, (lu.elems.Get(i, k)-sum)/lu.elems.Get(k, k))
		}
	}

	return &LUDecomposition{lu: lu, pi: pi, sign: sign}, nil
}

// Determinant returns sign × Π diagonal(LU).
func (d *LUDecomposition) Determinant() float64 {
	det := d.sign
	for i := 0; i < d.lu.rows; i++ {
		det *= d.lu.elems.Get(i, i)
	}

	return det
}

// PermutationMatrix returns the n×n matrix P with a 1 at (i, pi[i]) for
// each row i, representing the row swaps performed during decomposition.
// It satisfies P·A = L·U.
func (d *LUDecomposition) PermutationMatrix() *Matrix {
	n := d.lu.rows
	p, _ := New(n, n)
	for i := 0; i < n; i++ {
		p.elems.Set(i, d.pi[i], 1.0)
	}

	return p
}

// Lower extracts L as an independent matrix: the strict lower triangle of
// the compact LU with the implicit unit diagonal made explicit.
func (d *LUDecomposition) Lower() *Matrix {
	l := d.lu.Clone()
	l.Transform(func(row, col int, v float64) float64 {
		switch {
		case col > row:
			return 0.0
		case col == row:
			return 1.0
		default:
			return v
		}
	})

	return l
}

// Upper extracts U as an independent matrix: the upper triangle of the
// compact LU including the diagonal.
func (d *LUDecomposition) Upper() *Matrix {
	u := d.lu.Clone()
	u.Transform(func(row, col int, v float64) float64 {
		if col < row {
			return 0.0
		}

		return v
	})

	return u
}

// Solve returns the solution x of A·x = b for the decomposed A.
//
// Since P·A = L·U, the system becomes L·U·x = P·b: forward substitution
// solves L·y = P·b (the permutation index vector picks b[pi[i]], and L's
// unit diagonal means no division), then back substitution solves
// U·x = y, dividing by U's diagonal.
//
// Returns ErrNilVector or ErrDimensionMismatch on bad input.
// Complexity: O(n²).
func (d *LUDecomposition) Solve(b *vector.Vector) (*vector.Vector, error) {
	if b == nil {
		return nil, fmt.Errorf("Solve: %w", vector.ErrNilVector)
	}
	n := d.lu.rows
	if b.Dimension() != n {
		return nil, fmt.Errorf("Solve: dimension %d for order %d: %w",
			b.Dimension(), n, ErrDimensionMismatch)
	}

	y := make([]float64, n)
	x := make([]float64, n)

	// Forward: L·y = P·b.
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k < i; k++ {
			sum += d.lu.elems.Get(i, k) * y[k]
		}
		bi, _ := b.At(d.pi[i] + 1)
		y[i] = bi - sum
	}

	// Backward: U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for k := i + 1; k < n; k++ {
			sum += d.lu.elems.Get(i, k) * x[k]
		}
		x[i] = (y[i] - sum) / d.lu.elems.Get(i, i)
	}

	solution, err := vector.Of(x...)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return solution, nil
}

// Inverse returns the inverse of the decomposed matrix by solving
// A·x = eᵢ for each standard basis column and writing each solution into
// column i of the result. Cannot fail: every pivot already passed the
// tolerance check during decomposition.
//
// Complexity: O(n³) over the n substitution passes.
func (d *LUDecomposition) Inverse() *Matrix {
	n := d.lu.rows
	inv, _ := New(n, n)
	y := make([]float64, n)

	for e := 0; e < n; e++ {
		// Forward: L·y = P·e. The basis column makes P·e a 0/1 vector.
		for i := 0; i < n; i++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += d.lu.elems.Get(i, k) * y[k]
			}
			bi := 0.0
			if d.pi[i] == e {
				bi = 1.0
			}
			y[i] = bi - sum
		}

		// Backward: U·x = y, written straight into column e of the result.
		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for k := i + 1; k < n; k++ {
				sum += d.lu.elems.Get(i, k) * inv.elems.Get(k, e)
			}
			inv.elems.Set(i, e, (y[i]-sum)/d.lu.elems.Get(i, i))
		}
	}

	return inv
}
