package vector

import "fmt"

// Orthogonalize applies the modified Gram-Schmidt process to vectors,
// in place, producing a mutually orthogonal set spanning the same
// subspace. Requires at least two vectors of identical dimension.
//
// The modified variant finishes each vᵢ before touching any later vector:
// for i = 0..k-1, every vⱼ with j > i has its component along vᵢ removed
// before the outer loop advances. Subtracting projections from already
// partially-orthogonalized vectors, rather than from the originals, is
// what gives MGS its improved numerical stability over the classical
// process. The outer loop order is therefore significant.
//
// Complexity: O(k²·n) for k vectors of dimension n.
func Orthogonalize(vectors []*Vector) error {
	if err := checkSet("Orthogonalize", vectors); err != nil {
		return err
	}

	k := len(vectors)
	for i := 0; i < k; i++ {
		vi := vectors[i]
		for j := i + 1; j < k; j++ {
			// Remove the component in direction vi from vj.
			vj := vectors[j]
			p, err := vj.ProjectOnto(vi)
			if err != nil {
				return fmt.Errorf("Orthogonalize: %w", err)
			}
			if err = vj.Subtract(p); err != nil {
				return fmt.Errorf("Orthogonalize: %w", err)
			}
		}
	}

	return nil
}

// Orthonormalize applies the modified Gram-Schmidt process to vectors,
// in place, producing a mutually orthogonal set of unit vectors.
//
// Identical to Orthogonalize except that each vᵢ is normalized before the
// later vectors are projected onto it, so they see the unit direction.
func Orthonormalize(vectors []*Vector) error {
	if err := checkSet("Orthonormalize", vectors); err != nil {
		return err
	}

	k := len(vectors)
	for i := 0; i < k; i++ {
		vi := vectors[i]
		vi.Normalize()
		for j := i + 1; j < k; j++ {
			// Remove the component in direction vi from vj.
			vj := vectors[j]
			p, err := vj.ProjectOnto(vi)
			if err != nil {
				return fmt.Errorf("Orthonormalize: %w", err)
			}
			if err = vj.Subtract(p); err != nil {
				return fmt.Errorf("Orthonormalize: %w", err)
			}
		}
	}

	return nil
}

// checkSet validates a Gram-Schmidt input: at least two non-nil vectors,
// all of the same dimension.
func checkSet(method string, vectors []*Vector) error {
	if len(vectors) < 2 {
		return fmt.Errorf("%s: got %d: %w", method, len(vectors), ErrTooFewVectors)
	}
	for i, v := range vectors {
		if v == nil {
			return fmt.Errorf("%s: vector %d: %w", method, i, ErrNilVector)
		}
		if v.dim != vectors[0].dim {
			return fmt.Errorf("%s: dimensions %d and %d: %w",
				method, vectors[0].dim, v.dim, ErrDimensionMismatch)
		}
	}

	return nil
}
