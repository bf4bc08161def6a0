package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ToreEA/linear-algebra/buffer"
	"github.com/ToreEA/linear-algebra/numfmt"
	"github.com/ToreEA/linear-algebra/vector"
)

const epsilon = 1e-12

// mustOf builds a vector from values, failing the test on error.
func mustOf(t *testing.T, values ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.Of(values...)
	require.NoError(t, err)

	return v
}

// at reads a component, failing the test on error.
func at(t *testing.T, v *vector.Vector, i int) float64 {
	t.Helper()
	c, err := v.At(i)
	require.NoError(t, err)

	return c
}

func TestOf_CreatesFromValues(t *testing.T) {
	v := mustOf(t, 5, 6, 7, 8)

	require.Equal(t, 4, v.Dimension())
	require.Equal(t, 5.0, at(t, v, 1))
	require.Equal(t, 6.0, at(t, v, 2))
	require.Equal(t, 7.0, at(t, v, 3))
	require.Equal(t, 8.0, at(t, v, 4))
}

func TestOf_RejectsEmpty(t *testing.T) {
	_, err := vector.Of()
	require.ErrorIs(t, err, vector.ErrInvalidDimension)
}

func TestWithDimension_ZeroFilled(t *testing.T) {
	v, err := vector.WithDimension(3)
	require.NoError(t, err)

	require.Equal(t, 3, v.Dimension())
	require.False(t, v.AnyMatch(func(_ int, c float64) bool { return c != 0.0 }))
}

func TestWithDimension_RejectsNonPositive(t *testing.T) {
	_, err := vector.WithDimension(0)
	require.ErrorIs(t, err, vector.ErrInvalidDimension)
}

func TestConstant_FillsEveryComponent(t *testing.T) {
	v, err := vector.Constant(3, 3.14)
	require.NoError(t, err)

	require.False(t, v.AnyMatch(func(_ int, c float64) bool { return c != 3.14 }))
}

func TestRandom_StaysWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v, err := vector.Random(100, -9.9, 9.9, rng)
	require.NoError(t, err)

	require.False(t, v.AnyMatch(func(_ int, c float64) bool {
		return c < -9.9 || c >= 9.9
	}))
}

func TestFromBuffer_WrapsWithoutCopying(t *testing.T) {
	buf := buffer.NewVector(3)
	buf.Set(0, 5.0)
	buf.Set(1, 6.0)
	buf.Set(2, 7.0)

	v, err := vector.FromBuffer(buf)
	require.NoError(t, err)

	require.Equal(t, 3, v.Dimension())
	require.Equal(t, 5.0, at(t, v, 1))

	// Live view: mutating the buffer mutates the vector.
	buf.Set(2, 70.0)
	require.Equal(t, 70.0, at(t, v, 3))
}

func TestFromBuffer_RejectsNil(t *testing.T) {
	_, err := vector.FromBuffer(nil)
	require.ErrorIs(t, err, vector.ErrNilBuffer)
}

func TestAtSetAt_RangeChecked(t *testing.T) {
	v := mustOf(t, 1, 2, 3)

	require.NoError(t, v.SetAt(2, 20.0))
	require.Equal(t, 20.0, at(t, v, 2))

	_, err := v.At(0)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.At(4)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.SetAt(4, 1.0), vector.ErrIndexOutOfRange)
}

func TestClone_IsIndependent(t *testing.T) {
	v := mustOf(t, 5, 6, 7)
	c := v.Clone()

	require.NoError(t, c.SetAt(1, 50.0))
	require.Equal(t, 5.0, at(t, v, 1))
	require.Equal(t, 50.0, at(t, c, 1))
}

func TestLength_EuclideanNorm(t *testing.T) {
	v := mustOf(t, 3, 1, 2)

	require.InDelta(t, 3.742, v.Length(), 0.0004)
}

func TestAdd_InPlace(t *testing.T) {
	v := mustOf(t, 1, 2, 3)
	u := mustOf(t, 10, 20, 30)

	require.NoError(t, v.Add(u))
	require.True(t, v.Equal(mustOf(t, 11, 22, 33)))
}

func TestSubtract_InPlace(t *testing.T) {
	v := mustOf(t, 11, 22, 33)
	u := mustOf(t, 1, 2, 3)

	require.NoError(t, v.Subtract(u))
	require.True(t, v.Equal(mustOf(t, 10, 20, 30)))
}

func TestAddSubtract_DimensionMismatch(t *testing.T) {
	v := mustOf(t, 1, 2, 3)
	u := mustOf(t, 1, 2)

	require.ErrorIs(t, v.Add(u), vector.ErrDimensionMismatch)
	require.ErrorIs(t, v.Subtract(u), vector.ErrDimensionMismatch)
	require.ErrorIs(t, v.Add(nil), vector.ErrNilVector)
}

func TestScale_MultipliesEveryComponent(t *testing.T) {
	v := mustOf(t, 2, 3)
	v.Scale(6)

	require.True(t, v.Equal(mustOf(t, 12, 18)))
}

func TestDivide_DividesEveryComponent(t *testing.T) {
	v := mustOf(t, 10, 15)
	v.Divide(5)

	require.True(t, v.Equal(mustOf(t, 2, 3)))
}

func TestInnerProduct_SumOfComponentProducts(t *testing.T) {
	v := mustOf(t, 1, 2, 3)
	u := mustOf(t, 4, 5, 6)

	p, err := v.InnerProduct(u)
	require.NoError(t, err)
	require.Equal(t, 32.0, p)
}

func TestCrossProduct_ThreeDimensional(t *testing.T) {
	v := mustOf(t, 1, 2, 3)
	u := mustOf(t, 4, 5, 6)

	c, err := v.CrossProduct(u)
	require.NoError(t, err)
	require.True(t, c.Equal(mustOf(t, -3, 6, -3)))

	// Perpendicular to both inputs.
	p, err := c.InnerProduct(v)
	require.NoError(t, err)
	require.Equal(t, 0.0, p)
}

func TestCrossProduct_RejectsOtherDimensions(t *testing.T) {
	v := mustOf(t, 1, 2)
	u := mustOf(t, 3, 4)

	_, err := v.CrossProduct(u)
	require.ErrorIs(t, err, vector.ErrNotThreeDimensional)
}

func TestProjectOnto_LineSpannedByU(t *testing.T) {
	v := mustOf(t, 3, 4)
	u := mustOf(t, 1, 0)

	p, err := v.ProjectOnto(u)
	require.NoError(t, err)
	require.True(t, p.Equal(mustOf(t, 3, 0)))

	// Projecting does not mutate either operand.
	require.True(t, v.Equal(mustOf(t, 3, 4)))
	require.True(t, u.Equal(mustOf(t, 1, 0)))
}

func TestProjectOnto_ZeroVectorYieldsZero(t *testing.T) {
	v := mustOf(t, 3, 4)
	u := mustOf(t, 0, 0)

	p, err := v.ProjectOnto(u)
	require.NoError(t, err)
	require.True(t, p.IsZero())
}

func TestNormalize_UnitLength(t *testing.T) {
	v := mustOf(t, 3, 1, 2)
	v.Normalize()

	require.InDelta(t, 1.0, v.Length(), epsilon)
}

func TestNormalize_ZeroVectorProducesNaN(t *testing.T) {
	v := mustOf(t, 0, 0)
	v.Normalize()

	require.True(t, math.IsNaN(at(t, v, 1)))
}

func TestIsOrthogonalTo_ExactZeroInnerProduct(t *testing.T) {
	v := mustOf(t, 1, 0)
	u := mustOf(t, 0, 5)
	w := mustOf(t, 1, 1)

	orthogonal, err := v.IsOrthogonalTo(u)
	require.NoError(t, err)
	require.True(t, orthogonal)

	orthogonal, err = v.IsOrthogonalTo(w)
	require.NoError(t, err)
	require.False(t, orthogonal)
}

func TestIsZero_ExactComparison(t *testing.T) {
	zero := mustOf(t, 0, 0, 0)
	nearZero := mustOf(t, 0, 1e-30, 0)

	require.True(t, zero.IsZero())
	// Exact comparison: a tiny residue still counts as nonzero.
	require.False(t, nearZero.IsZero())
}

func TestIsNormalized_ExactComparison(t *testing.T) {
	unit := mustOf(t, 1, 0, 0)
	require.True(t, unit.IsNormalized())

	almost := mustOf(t, 1, 1e-8)
	require.False(t, almost.IsNormalized())
}

func TestIsOrthonormalTo_RequiresUnitLengthAndOrthogonality(t *testing.T) {
	e1 := mustOf(t, 1, 0)
	e2 := mustOf(t, 0, 1)
	long := mustOf(t, 0, 2)

	ortho, err := e1.IsOrthonormalTo(e2)
	require.NoError(t, err)
	require.True(t, ortho)

	ortho, err = e1.IsOrthonormalTo(long)
	require.NoError(t, err)
	require.False(t, ortho)
}

func TestTransform_VisitsInIndexOrder(t *testing.T) {
	v := mustOf(t, 5, 6, 7)
	var seen []int
	v.Transform(func(i int, c float64) float64 {
		seen = append(seen, i)
		return c + 10
	})

	require.Equal(t, []int{1, 2, 3}, seen)
	require.True(t, v.Equal(mustOf(t, 15, 16, 17)))
}

func TestAnyMatch_StopsAtFirstMatch(t *testing.T) {
	v := mustOf(t, 2, 3, 4)

	require.True(t, v.AnyMatch(func(_ int, c float64) bool { return c == 3.0 }))
	require.False(t, v.AnyMatch(func(_ int, c float64) bool { return c == 5.0 }))
}

func TestEqual_ExactComparison(t *testing.T) {
	v := mustOf(t, 1, 2, 3)

	require.True(t, v.Equal(mustOf(t, 1, 2, 3)))
	require.False(t, v.Equal(mustOf(t, 1, 2)))
	require.False(t, v.Equal(mustOf(t, 1, 2, 3.0000001)))
	require.False(t, v.Equal(nil))
}

func TestFormat_SpaceSeparatedNewlineTerminated(t *testing.T) {
	v := mustOf(t, 2, -1, 1)

	require.Equal(t, "2 -1 1\n", v.Format(numfmt.CompactNoDecimals()))
}
