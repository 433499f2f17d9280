package ecp

import "github.com/Yawning/polarssl/mpi"

// Mul computes R = k·P for a non-negative scalar k and affine point P
// (spec.md §4.5), using a Montgomery-style double-and-add-always ladder:
// both the doubling and the addition happen on every bit, independent of
// its value, so that the sequence of point operations does not vary with
// k. The final conditional-copy select is the only step whose outcome
// depends on the bit; the underlying MPI layer is not itself constant
// time, so this gives SPA-pattern resistance at the point-operation
// granularity, not full constant-time secrecy (spec.md §5).
func (g *Group) Mul(k *mpi.MPI, p *AffinePoint) (*AffinePoint, error) {
	if k.CmpInt(0) == 0 {
		return NewAffinePoint(), nil
	}

	q0 := zeroJacobian()
	for pos := k.Msb() - 1; pos >= 0; pos-- {
		doubled, err := g.DoubleJacobian(q0)
		if err != nil {
			return nil, err
		}
		added, err := g.AddMixed(doubled, p)
		if err != nil {
			return nil, err
		}

		// Conditional copy, not a pointer swap: both branches of the
		// select are computed above regardless of the bit, so only this
		// assignment depends on secret data.
		if k.GetBit(pos) == 1 {
			q0 = added
		} else {
			q0 = doubled
		}
	}

	return g.ToAffine(q0)
}
