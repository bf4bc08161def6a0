package matrix

// Structural predicates. All comparisons are exact (no tolerance); see the
// package documentation for the consequences on values carrying round-off.

// IsSquare reports whether the row and column counts are equal.
func (m *Matrix) IsSquare() bool {
	return m.rows == m.cols
}

// IsIdentity reports whether the matrix is square with ones on the
// diagonal and zeros elsewhere.
func (m *Matrix) IsIdentity() bool {
	return m.IsSquare() && !m.AnyMatch(func(row, col int, v float64) bool {
		if row == col {
			return v != 1.0
		}

		return v != 0.0
	})
}

// IsZero reports whether every entry is zero.
func (m *Matrix) IsZero() bool {
	return !m.AnyMatch(func(_, _ int, v float64) bool { return v != 0.0 })
}

// IsDiagonal reports whether the matrix is square with nonzero entries on
// the diagonal only.
func (m *Matrix) IsDiagonal() bool {
	return m.IsSquare() && !m.AnyMatch(func(row, col int, v float64) bool {
		if row == col {
			return v == 0.0
		}

		return v != 0.0
	})
}

// IsSymmetric reports whether the matrix equals its transpose. Only the
// strict lower triangle is scanned against its mirror.
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 1; i < m.rows; i++ {
		for j := 0; j < i; j++ {
			if m.elems.Get(i, j) != m.elems.Get(j, i) {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports whether the matrix is square with zeros below
// the diagonal.
func (m *Matrix) IsUpperTriangular() bool {
	return m.IsSquare() && !m.AnyMatch(func(row, col int, v float64) bool {
		return col < row && v != 0.0
	})
}

// IsLowerTriangular reports whether the matrix is square with zeros above
// the diagonal.
func (m *Matrix) IsLowerTriangular() bool {
	return m.IsSquare() && !m.AnyMatch(func(row, col int, v float64) bool {
		return col > row && v != 0.0
	})
}

// IsTriangular reports whether the matrix is upper or lower triangular.
func (m *Matrix) IsTriangular() bool {
	return m.IsUpperTriangular() || m.IsLowerTriangular()
}

// IsOrthogonal reports whether A·Aᵗ is the identity. Costs a full O(n³)
// multiply.
func (m *Matrix) IsOrthogonal() bool {
	t := m.Clone()
	t.Transpose()
	p, err := m.Multiply(t)
	if err != nil {
		return false
	}

	return p.IsIdentity()
}

// IsInvolutory reports whether the matrix is its own inverse: A·A is the
// identity.
func (m *Matrix) IsInvolutory() bool {
	p, err := m.Multiply(m)
	if err != nil {
		return false
	}

	return p.IsIdentity()
}

// IsInvertible reports whether the matrix is square with a nonzero
// determinant. A singular-matrix failure during the underlying
// decomposition counts as not invertible.
func (m *Matrix) IsInvertible() bool {
	if !m.IsSquare() {
		return false
	}
	det, err := m.Determinant()
	if err != nil {
		return false
	}

	return det != 0.0
}
