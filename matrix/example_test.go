package matrix_test

import (
	"fmt"

	"github.com/ToreEA/linear-algebra/matrix"
	"github.com/ToreEA/linear-algebra/numfmt"
	"github.com/ToreEA/linear-algebra/vector"
)

// ExampleMatrix_GaussianElimination reduces an augmented 3×4 system to
// row echelon form. Partial pivoting moves the largest-magnitude column
// entry onto the diagonal before each elimination step.
//
// Complexity: O(n³) time, in place.
func ExampleMatrix_GaussianElimination() {
	m, err := matrix.FromRowMajor(3, 4,
		2, 1, 1, 5,
		4, -6, 0, -2,
		-2, 7, 2, 9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err = m.GaussianElimination(); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m.Format(numfmt.CompactNoDecimals()))
	// Output:
	// 4 -6 0 -2
	// 0 4 1 6
	// 0 0 1 2
}

// ExampleMatrix_GaussJordanElimination inverts a 3×3 matrix by reducing
// the augmented block [A | I] to [I | A⁻¹].
func ExampleMatrix_GaussJordanElimination() {
	m, err := matrix.FromRowMajor(3, 6,
		4, 3, 2, 1, 0, 0,
		5, 6, 3, 0, 1, 0,
		3, 5, 2, 0, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err = m.GaussJordanElimination(); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m.Format(numfmt.CompactNoDecimals()))
	// Output:
	// 1 0 0 3 -4 3
	// 0 1 0 1 -2 2
	// 0 0 1 -7 11 -9
}

// ExampleLUDecomposition_Solve solves A·x = b through the LU
// decomposition. Decomposing once and substituting per right-hand side
// keeps repeated solves at O(n²).
func ExampleLUDecomposition_Solve() {
	a, err := matrix.FromRowMajor(3, 3,
		1, 2, 4,
		3, 8, 14,
		2, 6, 13)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	b, err := vector.Of(4, 12, 11)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lud, err := a.LUDecompose()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x, err := lud.Solve(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("det=%.0f\n", lud.Determinant())
	fmt.Print(x.Format(numfmt.CompactNoDecimals()))
	// Output:
	// det=6
	// 2 -1 1
}

// ExampleMatrix_Invert inverts a 2×2 matrix with the closed-form
// adjugate formula.
func ExampleMatrix_Invert() {
	m, err := matrix.FromRowMajor(2, 2,
		1, 2,
		3, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	inv, err := m.Invert()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(inv.Format(numfmt.Compact()))
	// Output:
	// -2.0 1.0
	// 1.5 -0.5
}

// ExampleMatrix_Multiply multiplies a 2×3 by a 3×2 matrix.
func ExampleMatrix_Multiply() {
	a, err := matrix.FromRowMajor(2, 3,
		2, 1, 4,
		1, 5, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	b, err := matrix.FromRowMajor(3, 2,
		3, 2,
		-1, 4,
		1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	product, err := a.Multiply(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(product.Format(numfmt.CompactNoDecimals()))
	// Output:
	// 9 16
	// 0 26
}
