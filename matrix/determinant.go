package matrix

import "fmt"

// Determinant returns the determinant of a square matrix.
//
// Dispatch: 2×2 and 3×3 use the closed-form cofactor formulas (a fixed
// handful of multiplications, exact for those sizes); triangular matrices
// use the product of the diagonal; every other size delegates to the LU
// decomposition and returns sign × Π diagonal(LU).
//
// Returns ErrNonSquare for non-square input. For sizes going through LU,
// a singular matrix surfaces as ErrSingularMatrix rather than an exact
// zero, since the decomposition stops at the empty pivot column.
func (m *Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("Determinant: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	switch {
	case m.rows == 2:
		// ad - bc
		return m.elems.Get(0, 0)*m.elems.Get(1, 1) -
			m.elems.Get(0, 1)*m.elems.Get(1, 0), nil

	case m.rows == 3:
		// aei - afh - bdi + bfg + cdh - ceg
		return m.elems.Get(0, 0)*m.elems.Get(1, 1)*m.elems.Get(2, 2) -
			m.elems.Get(0, 0)*m.elems.Get(1, 2)*m.elems.Get(2, 1) -
			m.elems.Get(0, 1)*m.elems.Get(1, 0)*m.elems.Get(2, 2) +
			m.elems.Get(0, 1)*m.elems.Get(1, 2)*m.elems.Get(2, 0) +
			m.elems.Get(0, 2)*m.elems.Get(1, 0)*m.elems.Get(2, 1) -
			m.elems.Get(0, 2)*m.elems.Get(1, 1)*m.elems.Get(2, 0), nil

	case m.IsTriangular():
		det := 1.0
		for i := 0; i < m.rows; i++ {
			det *= m.elems.Get(i, i)
		}

		return det, nil

	default:
		lud, err := m.LUDecompose()
		if err != nil {
			return 0, fmt.Errorf("Determinant: %w", err)
		}

		return lud.Determinant(), nil
	}
}

// Invert returns the inverse of a square, nonsingular matrix.
//
// 2×2 and 3×3 use the closed-form adjugate/determinant formulas, failing
// with ErrSingularMatrix on a zero determinant; larger sizes invert
// through the LU decomposition by solving A·x = eᵢ for each standard
// basis column. Returns ErrNonSquare for non-square input.
func (m *Matrix) Invert() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("Invert: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	switch {
	case m.rows == 2:
		return m.invert2x2()
	case m.rows == 3:
		return m.invert3x3()
	default:
		lud, err := m.LUDecompose()
		if err != nil {
			return nil, fmt.Errorf("Invert: %w", err)
		}

		return lud.Inverse(), nil
	}
}

// invert2x2 inverts via the 2×2 adjugate:
//
//	| a b |⁻¹ = 1/(ad-bc) · |  d -b |
//	| c d |                 | -c  a |
func (m *Matrix) invert2x2() (*Matrix, error) {
	a, b := m.elems.Get(0, 0), m.elems.Get(0, 1)
	c, d := m.elems.Get(1, 0), m.elems.Get(1, 1)

	det := a*d - b*c
	if det == 0.0 {
		return nil, fmt.Errorf("Invert: %w", ErrSingularMatrix)
	}

	inv, err := New(2, 2)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	inv.elems.Set(0, 0, d/det)
	inv.elems.Set(0, 1, -b/det)
	inv.elems.Set(1, 0, -c/det)
	inv.elems.Set(1, 1, a/det)

	return inv, nil
}

// invert3x3 inverts via the 3×3 adjugate: each entry of the inverse is a
// signed 2×2 minor divided by the determinant, transposed.
func (m *Matrix) invert3x3() (*Matrix, error) {
	a, b, c := m.elems.Get(0, 0), m.elems.Get(0, 1), m.elems.Get(0, 2)
	d, e, f := m.elems.Get(1, 0), m.elems.Get(1, 1), m.elems.Get(1, 2)
	g, h, i := m.elems.Get(2, 0), m.elems.Get(2, 1), m.elems.Get(2, 2)

	cofA := e*i - f*h
	cofB := -(d*i - f*g)
	cofC := d*h - e*g
	cofD := -(b*i - c*h)
	cofE := a*i - c*g
	cofF := -(a*h - b*g)
	cofG := b*f - c*e
	cofH := -(a*f - c*d)
	cofI := a*e - b*d

	det := a*cofA + b*cofB + c*cofC
	if det == 0.0 {
		return nil, fmt.Errorf("Invert: %w", ErrSingularMatrix)
	}

	inv, err := New(3, 3)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	inv.elems.Set(0, 0, cofA/det)
	inv.elems.Set(1, 0, cofB/det)
	inv.elems.Set(2, 0, cofC/det)
	inv.elems.Set(0, 1, cofD/det)
	inv.elems.Set(1, 1, cofE/det)
	inv.elems.Set(2, 1, cofF/det)
	inv.elems.Set(0, 2, cofG/det)
	inv.elems.Set(1, 2, cofH/det)
	inv.elems.Set(2, 2, cofI/det)

	return inv, nil
}
