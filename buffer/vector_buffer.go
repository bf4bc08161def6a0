package buffer

// fixed is the single VectorBuffer implementation: n elements of a float64
// slice addressed as base + stride·i. An owning buffer has base 0 and
// stride 1 over its own allocation; a view shares a MatrixBuffer's slice
// with whatever base and stride the row or column extraction dictates.
type fixed struct {
	n      int
	values []float64
	base   int
	stride int
}

// NewVector allocates a zeroed buffer of n owned elements.
// Panics if n is not positive.
func NewVector(n int) VectorBuffer {
	dimCheck("size", n)

	return &fixed{n: n, values: make([]float64, n), base: 0, stride: 1}
}

// View wraps an existing slice as a non-owning buffer of n elements
// starting at base and stepping by stride. Writes through the view mutate
// the shared slice. Used by MatrixBuffer.Row and MatrixBuffer.Column.
func View(values []float64, n, base, stride int) VectorBuffer {
	dimCheck("size", n)

	return &fixed{n: n, values: values, base: base, stride: stride}
}

// Get returns the value at index i.
func (b *fixed) Get(i int) float64 {
	return b.values[b.addressOf(i)]
}

// Set stores value at index i.
func (b *fixed) Set(i int, value float64) {
	b.values[b.addressOf(i)] = value
}

// Len returns the number of addressable elements.
func (b *fixed) Len() int { return b.n }

// Clone compacts the elements into a fresh owned slice with base 0 and
// stride 1, severing any sharing with a parent matrix.
func (b *fixed) Clone() VectorBuffer {
	values := make([]float64, b.n)
	for i := 0; i < b.n; i++ {
		values[i] = b.Get(i)
	}

	return &fixed{n: b.n, values: values, base: 0, stride: 1}
}

func (b *fixed) addressOf(i int) int {
	boundsCheck("element", i, b.n)

	return b.base + b.stride*i
}
