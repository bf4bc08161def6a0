package vector

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/ToreEA/linear-algebra/buffer"
	"github.com/ToreEA/linear-algebra/numfmt"
)

// Vector is a fixed-dimension sequence of float64 components with 1-based
// element access. It either owns its buffer exclusively or is a live view
// into a matrix's row or column storage; see the package documentation for
// the aliasing contract.
type Vector struct {
	dim   int
	elems buffer.VectorBuffer
}

// Of builds a vector from explicit component values.
// Returns ErrInvalidDimension when called with no values.
func Of(values ...float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("Of: %w", ErrInvalidDimension)
	}
	v := &Vector{dim: len(values), elems: buffer.NewVector(len(values))}
	for i, value := range values {
		v.elems.Set(i, value)
	}

	return v, nil
}

// WithDimension returns an uninitialized (zero-filled) vector of the given
// dimension. Returns ErrInvalidDimension when dim < 1.
func WithDimension(dim int) (*Vector, error) {
	if dim < 1 {
		return nil, fmt.Errorf("WithDimension: %d: %w", dim, ErrInvalidDimension)
	}

	return &Vector{dim: dim, elems: buffer.NewVector(dim)}, nil
}

// Zero returns the zero vector of the given dimension.
func Zero(dim int) (*Vector, error) {
	return Constant(dim, 0.0)
}

// Constant returns a vector with every component set to value.
func Constant(dim int, value float64) (*Vector, error) {
	v, err := WithDimension(dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		v.elems.Set(i, value)
	}

	return v, nil
}

// Random returns a vector with components drawn uniformly from [min, max).
// A nil rng falls back to the shared global source. Randomness is a
// test-data collaborator only; no algorithm in this module depends on it.
func Random(dim int, min, max float64, rng *rand.Rand) (*Vector, error) {
	v, err := WithDimension(dim)
	if err != nil {
		return nil, err
	}
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	for i := 0; i < dim; i++ {
		v.elems.Set(i, min+next()*(max-min))
	}

	return v, nil
}

// FromBuffer wraps an existing buffer as a vector without copying.
// When buf is a matrix row or column view, the resulting vector aliases
// the matrix storage: mutations propagate both ways.
func FromBuffer(buf buffer.VectorBuffer) (*Vector, error) {
	if buf == nil {
		return nil, fmt.Errorf("FromBuffer: %w", ErrNilBuffer)
	}

	return &Vector{dim: buf.Len(), elems: buf}, nil
}

// Dimension returns the number of components. Fixed at construction.
func (v *Vector) Dimension() int { return v.dim }

// At returns the component at 1-based index i.
// Returns ErrIndexOutOfRange when i is outside [1, dimension].
func (v *Vector) At(i int) (float64, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, fmt.Errorf("At(%d): %w", i, err)
	}

	return v.elems.Get(i - 1), nil
}

// SetAt stores value at 1-based index i.
// Returns ErrIndexOutOfRange when i is outside [1, dimension].
func (v *Vector) SetAt(i int, value float64) error {
	if err := v.checkIndex(i); err != nil {
		return fmt.Errorf("SetAt(%d): %w", i, err)
	}
	v.elems.Set(i-1, value)

	return nil
}

// Clone returns a fully independent copy sharing no storage with the
// receiver, even when the receiver is a view into matrix storage.
func (v *Vector) Clone() *Vector {
	return &Vector{dim: v.dim, elems: v.elems.Clone()}
}

// Length returns the Euclidean norm sqrt(Σ vᵢ²).
func (v *Vector) Length() float64 {
	var sum float64
	for i := 0; i < v.dim; i++ {
		c := v.elems.Get(i)
		sum += c * c
	}

	return math.Sqrt(sum)
}

// Add adds other to the receiver componentwise, in place.
// Returns ErrNilVector or ErrDimensionMismatch on bad input.
func (v *Vector) Add(other *Vector) error {
	if err := v.checkOperand(other); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	for i := 0; i < v.dim; i++ {
		v.elems.Set(i, v.elems.Get(i)+other.elems.Get(i))
	}

	return nil
}

// Subtract subtracts other from the receiver componentwise, in place.
func (v *Vector) Subtract(other *Vector) error {
	if err := v.checkOperand(other); err != nil {
		return fmt.Errorf("Subtract: %w", err)
	}
	for i := 0; i < v.dim; i++ {
		v.elems.Set(i, v.elems.Get(i)-other.elems.Get(i))
	}

	return nil
}

// Scale multiplies every component by value, in place.
func (v *Vector) Scale(value float64) {
	for i := 0; i < v.dim; i++ {
		v.elems.Set(i, v.elems.Get(i)*value)
	}
}

// Divide divides every component by value, in place. Division by zero is
// not guarded and produces ±Inf or NaN components, as plain float64
// division would.
func (v *Vector) Divide(value float64) {
	for i := 0; i < v.dim; i++ {
		v.elems.Set(i, v.elems.Get(i)/value)
	}
}

// InnerProduct returns Σ vᵢ·uᵢ, the dot product of the receiver and other.
func (v *Vector) InnerProduct(other *Vector) (float64, error) {
	if err := v.checkOperand(other); err != nil {
		return 0, fmt.Errorf("InnerProduct: %w", err)
	}
	var sum float64
	for i := 0; i < v.dim; i++ {
		sum += v.elems.Get(i) * other.elems.Get(i)
	}

	return sum, nil
}

// CrossProduct returns the vector product of the receiver and other.
// Defined for dimension 3 only; returns ErrNotThreeDimensional otherwise.
func (v *Vector) CrossProduct(other *Vector) (*Vector, error) {
	if err := v.checkOperand(other); err != nil {
		return nil, fmt.Errorf("CrossProduct: %w", err)
	}
	if v.dim != 3 {
		return nil, fmt.Errorf("CrossProduct: dimension %d: %w", v.dim, ErrNotThreeDimensional)
	}

	return Of(
		v.elems.Get(1)*other.elems.Get(2)-v.elems.Get(2)*other.elems.Get(1),
		v.elems.Get(2)*other.elems.Get(0)-v.elems.Get(0)*other.elems.Get(2),
		v.elems.Get(0)*other.elems.Get(1)-v.elems.Get(1)*other.elems.Get(0),
	)
}

// ProjectOnto returns the orthogonal projection of the receiver onto the
// line spanned by u: u·(v·u)/(u·u). When u is the zero vector the
// projection is the zero vector, avoiding the division by zero.
func (v *Vector) ProjectOnto(u *Vector) (*Vector, error) {
	if err := v.checkOperand(u); err != nil {
		return nil, fmt.Errorf("ProjectOnto: %w", err)
	}
	if u.IsZero() {
		return Zero(u.dim)
	}

	vu, _ := v.InnerProduct(u)
	uu, _ := u.InnerProduct(u)

	p := u.Clone()
	p.Scale(vu / uu)

	return p, nil
}

// Normalize divides the receiver by its length, in place. Normalizing the
// zero vector produces NaN components; guarding that case is the caller's
// responsibility.
func (v *Vector) Normalize() {
	v.Divide(v.Length())
}

// IsOrthogonalTo reports whether the inner product with other is exactly 0.
func (v *Vector) IsOrthogonalTo(other *Vector) (bool, error) {
	p, err := v.InnerProduct(other)
	if err != nil {
		return false, fmt.Errorf("IsOrthogonalTo: %w", err)
	}

	return p == 0.0, nil
}

// IsZero reports whether every component is exactly 0.
func (v *Vector) IsZero() bool {
	return !v.AnyMatch(func(_ int, value float64) bool { return value != 0.0 })
}

// IsNormalized reports whether the length is exactly 1 (a unit vector).
func (v *Vector) IsNormalized() bool {
	return v.Length() == 1.0
}

// IsOrthonormalTo reports whether both vectors are unit vectors and
// mutually orthogonal.
func (v *Vector) IsOrthonormalTo(other *Vector) (bool, error) {
	orthogonal, err := v.IsOrthogonalTo(other)
	if err != nil {
		return false, fmt.Errorf("IsOrthonormalTo: %w", err)
	}

	return v.IsNormalized() && other.IsNormalized() && orthogonal, nil
}

// Transform replaces each component with fn(i, component), visiting
// indices 1..dimension in order.
func (v *Vector) Transform(fn func(i int, value float64) float64) {
	for i := 0; i < v.dim; i++ {
		v.elems.Set(i, fn(i+1, v.elems.Get(i)))
	}
}

// ForEach visits each component as (i, component) in index order.
func (v *Vector) ForEach(fn func(i int, value float64)) {
	for i := 0; i < v.dim; i++ {
		fn(i+1, v.elems.Get(i))
	}
}

// AnyMatch reports whether pred holds for any component, scanning in index
// order and stopping at the first match.
func (v *Vector) AnyMatch(pred func(i int, value float64) bool) bool {
	for i := 0; i < v.dim; i++ {
		if pred(i+1, v.elems.Get(i)) {
			return true
		}
	}

	return false
}

// Equal reports whether other has the same dimension and exactly equal
// components.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || v.dim != other.dim {
		return false
	}

	return !v.AnyMatch(func(i int, value float64) bool {
		return value != other.elems.Get(i-1)
	})
}

// String renders the vector with the Pretty formatter, components
// space-separated and terminated by a newline.
func (v *Vector) String() string {
	return v.Format(numfmt.Pretty())
}

// Format renders the vector using the given formatter.
func (v *Vector) Format(f numfmt.Formatter) string {
	var sb strings.Builder
	for i := 0; i < v.dim; i++ {
		sb.WriteString(f(v.elems.Get(i)))
		if i == v.dim-1 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

func (v *Vector) checkIndex(i int) error {
	if i < 1 || i > v.dim {
		return ErrIndexOutOfRange
	}

	return nil
}

func (v *Vector) checkOperand(other *Vector) error {
	if other == nil {
		return ErrNilVector
	}
	if other.dim != v.dim {
		return fmt.Errorf("dimensions %d and %d: %w", v.dim, other.dim, ErrDimensionMismatch)
	}

	return nil
}
