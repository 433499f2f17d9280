package ecp

// AddMixed computes R = P + Q in Jacobian coordinates, where P is Jacobian
// and Q is affine (spec.md §4.4). Keeping the base point affine during
// scalar multiplication eliminates three field multiplications per
// addition compared to full Jacobian-Jacobian addition.
func (g *Group) AddMixed(p *JacobianPoint, q *AffinePoint) (*JacobianPoint, error) {
	if p.Z.EqZero() {
		return g.ToJacobian(q), nil
	}
	if q.IsZero {
		return copyJacobian(p), nil
	}

	t1, err := g.modMul(p.Z, p.Z) // T1 = Z²
	if err != nil {
		return nil, err
	}
	t2, err := g.modMul(t1, p.Z) // T2 = Z³
	if err != nil {
		return nil, err
	}
	t1, err = g.modMul(t1, q.X) // T1 = U2 = Q.X·Z²
	if err != nil {
		return nil, err
	}
	t2, err = g.modMul(t2, q.Y) // T2 = S2 = Q.Y·Z³
	if err != nil {
		return nil, err
	}
	t1 = g.modSub(t1, p.X) // T1 = H
	t2 = g.modSub(t2, p.Y) // T2 = r

	if t1.EqZero() {
		if t2.EqZero() {
			return g.DoubleJacobian(p)
		}
		return zeroJacobian(), nil
	}

	zOut, err := g.modMul(p.Z, t1) // Z' = P.Z·H
	if err != nil {
		return nil, err
	}
	t3, err := g.modMul(t1, t1) // T3 = H²
	if err != nil {
		return nil, err
	}
	t4, err := g.modMul(t3, t1) // T4 = H³
	if err != nil {
		return nil, err
	}
	t3, err = g.modMul(t3, p.X) // T3 = H²·P.X
	if err != nil {
		return nil, err
	}

	rSquared, err := g.modMul(t2, t2) // r²
	if err != nil {
		return nil, err
	}
	twoT3 := g.modAdd(t3, t3)
	xOut := g.modSub(rSquared, twoT3)
	xOut = g.modSub(xOut, t4) // X' = r² - 2T3 - T4

	t3MinusX := g.modSub(t3, xOut)
	t3f, err := g.modMul(t3MinusX, t2) // (T3-X')·r
	if err != nil {
		return nil, err
	}
	t4f, err := g.modMul(t4, p.Y) // T4·P.Y
	if err != nil {
		return nil, err
	}
	yOut := g.modSub(t3f, t4f)

	return &JacobianPoint{X: xOut, Y: yOut, Z: zOut}, nil
}

// Add computes R = P + Q for two affine points (spec.md §6's add), lifting
// P to Jacobian, running the mixed addition, and projecting back.
func (g *Group) Add(p, q *AffinePoint) (*AffinePoint, error) {
	pj := g.ToJacobian(p)
	rj, err := g.AddMixed(pj, q)
	if err != nil {
		return nil, err
	}
	return g.ToAffine(rj)
}
