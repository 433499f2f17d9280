package ecp

import (
	"github.com/cronokirby/safenum"

	"github.com/Yawning/polarssl/mpi"
)

// AffinePoint is a curve point in (X, Y) form, plus a flag marking the
// point at infinity (spec.md §3). When IsZero is true, X and Y are
// logically undefined.
type AffinePoint struct {
	X, Y   *safenum.Nat
	IsZero bool
}

// NewAffinePoint returns the point at infinity.
func NewAffinePoint() *AffinePoint {
	return &AffinePoint{IsZero: true}
}

// SetZero resets p to the point at infinity, releasing its coordinates.
func (p *AffinePoint) SetZero() {
	p.X, p.Y = nil, nil
	p.IsZero = true
}

// Copy reallocates p's coordinates to match src's value.
func (p *AffinePoint) Copy(src *AffinePoint) {
	if src.IsZero {
		p.SetZero()
		return
	}
	p.X = new(safenum.Nat).SetNat(src.X)
	p.Y = new(safenum.Nat).SetNat(src.Y)
	p.IsZero = false
}

// Equal reports whether p and o represent the same affine point.
func (p *AffinePoint) Equal(o *AffinePoint) bool {
	if p.IsZero || o.IsZero {
		return p.IsZero == o.IsZero
	}
	return natEqual(p.X, o.X) && natEqual(p.Y, o.Y)
}

// PointReadString parses ASCII coordinates in the given radix into a
// non-zero affine point (spec.md §6's point_read_string).
func PointReadString(radix int, xs, ys string) (*AffinePoint, error) {
	xm, err := mpi.ReadString(radix, xs)
	if err != nil {
		return nil, newError(ErrParse, "x coordinate: "+err.Error())
	}
	ym, err := mpi.ReadString(radix, ys)
	if err != nil {
		return nil, newError(ErrParse, "y coordinate: "+err.Error())
	}
	return &AffinePoint{
		X: new(safenum.Nat).SetBytes(xm.BigInt().Bytes()),
		Y: new(safenum.Nat).SetBytes(ym.BigInt().Bytes()),
	}, nil
}

// IsOnCurve reports whether p satisfies y² ≡ x³ − 3x + b (mod p). The point
// at infinity is never considered on the curve, matching the teacher's
// CurveParams.IsOnCurve.
func (g *Group) IsOnCurve(p *AffinePoint) bool {
	if p.IsZero {
		return false
	}
	y2 := new(safenum.Nat).ModMul(p.Y, p.Y, g.p)
	rhs := g.polynomial(p.X)
	return natEqual(y2, rhs)
}

func (g *Group) polynomial(x *safenum.Nat) *safenum.Nat {
	x3 := new(safenum.Nat).ModMul(x, x, g.p)
	x3.ModMul(x3, x, g.p)

	threeX := new(safenum.Nat).ModAdd(x, x, g.p)
	threeX.ModAdd(threeX, x, g.p)

	x3.ModSub(x3, threeX, g.p)
	x3.ModAdd(x3, g.B, g.p)
	return x3
}

// JacobianPoint is a curve point in (X, Y, Z) projective form, representing
// the affine point (X/Z², Y/Z³) when Z != 0, and the point at infinity when
// Z == 0 (spec.md §3).
type JacobianPoint struct {
	X, Y, Z *safenum.Nat
}

func zeroJacobian() *JacobianPoint {
	return &JacobianPoint{X: natOne(), Y: natOne(), Z: new(safenum.Nat)}
}

func copyJacobian(p *JacobianPoint) *JacobianPoint {
	return &JacobianPoint{
		X: new(safenum.Nat).SetNat(p.X),
		Y: new(safenum.Nat).SetNat(p.Y),
		Z: new(safenum.Nat).SetNat(p.Z),
	}
}

// ToJacobian lifts an affine point into Jacobian form (spec.md §4.1).
func (g *Group) ToJacobian(p *AffinePoint) *JacobianPoint {
	if p.IsZero {
		return zeroJacobian()
	}
	return &JacobianPoint{
		X: new(safenum.Nat).SetNat(p.X),
		Y: new(safenum.Nat).SetNat(p.Y),
		Z: natOne(),
	}
}

// ToAffine projects a Jacobian point back to affine form (spec.md §4.1). It
// fails with ErrGeneric when Z's inverse cannot be computed — which, since
// callers have already ruled out Z == 0, indicates a corrupted group
// parameter.
func (g *Group) ToAffine(p *JacobianPoint) (*AffinePoint, error) {
	if p.Z.EqZero() {
		return NewAffinePoint(), nil
	}

	zinv := new(safenum.Nat).ModInverse(p.Z, g.p)
	check := new(safenum.Nat).ModMul(zinv, p.Z, g.p)
	if !natEqual(check, natOne()) {
		return nil, newError(ErrGeneric, "could not invert Z coordinate")
	}

	zinv2 := new(safenum.Nat).ModMul(zinv, zinv, g.p)
	zinv3 := new(safenum.Nat).ModMul(zinv2, zinv, g.p)

	return &AffinePoint{
		X: new(safenum.Nat).ModMul(p.X, zinv2, g.p),
		Y: new(safenum.Nat).ModMul(p.Y, zinv3, g.p),
	}, nil
}
