package ecp

// DoubleJacobian computes R = 2·P in Jacobian coordinates (spec.md §4.3),
// using the short-Weierstrass a=-3 formulas that let the tangent slope be
// computed from 3·(X−Z²)·(X+Z²) instead of the general 3X²+aZ⁴.
func (g *Group) DoubleJacobian(p *JacobianPoint) (*JacobianPoint, error) {
	if p.Z.EqZero() {
		return zeroJacobian(), nil
	}

	t1, err := g.modMul(p.Z, p.Z) // T1 = Z²
	if err != nil {
		return nil, err
	}

	xMinusT1 := g.modSub(p.X, t1)
	xPlusT1 := g.modAdd(p.X, t1)
	t2, err := g.modMul(xMinusT1, xPlusT1) // (X-T1)(X+T1)
	if err != nil {
		return nil, err
	}
	t2 = g.modMulSmall(t2, 3) // T2 = 3(X²-Z⁴)

	y := g.modAdd(p.Y, p.Y) // Y = 2Y
	zOut, err := g.modMul(y, p.Z) // Z' = Y·Z
	if err != nil {
		return nil, err
	}
	y, err = g.modMul(y, y) // Y = 4Y_old²
	if err != nil {
		return nil, err
	}
	t3, err := g.modMul(y, p.X) // T3 = 4X·Y_old²
	if err != nil {
		return nil, err
	}
	y, err = g.modMul(y, y) // Y = 16Y_old⁴
	if err != nil {
		return nil, err
	}
	y = g.modHalve(y) // Y = 8Y_old⁴

	t2sq, err := g.modMul(t2, t2)
	if err != nil {
		return nil, err
	}
	twoT3 := g.modAdd(t3, t3)
	xOut := g.modSub(t2sq, twoT3) // X' = T2² - 2T3

	t3MinusX := g.modSub(t3, xOut)
	yOut, err := g.modMul(t2, t3MinusX) // T2·(T3-X')
	if err != nil {
		return nil, err
	}
	yOut = g.modSub(yOut, y) // Y' = T2·(T3-X') - Y

	return &JacobianPoint{X: xOut, Y: yOut, Z: zOut}, nil
}
