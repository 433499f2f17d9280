// Package ecp implements Jacobian-coordinate group arithmetic over the
// five NIST short-Weierstrass curves (P-192, P-224, P-256, P-384, P-521):
// affine/Jacobian point conversion, fast modular reduction, point doubling,
// mixed point addition, and a fixed-pattern scalar-multiplication ladder.
package ecp

import (
	"math/big"

	"github.com/cronokirby/safenum"

	"github.com/Yawning/polarssl/mpi"
)

// NamedCurve identifies one of the five supported curves.
type NamedCurve int

const (
	SECP192R1 NamedCurve = iota
	SECP224R1
	SECP256R1
	SECP384R1
	SECP521R1
)

// Group bundles the field prime, curve constant, base point, and group
// order that fix a curve instance (spec.md §3). It is read-only after
// construction and may be shared across goroutines, provided each caller
// supplies its own scratch point and scalar (spec.md §5).
type Group struct {
	p     *safenum.Modulus
	pBig  *big.Int
	B     *safenum.Nat
	G     *AffinePoint
	N     *mpi.MPI
	Pbits int
	Modp  ModpKind

	invTwo *safenum.Nat
}

// NewGroup returns an empty, unpopulated group.
func NewGroup() *Group {
	return &Group{}
}

// Free releases the group's owned values.
func (g *Group) Free() {
	*g = Group{}
}

func natFromConst(c curveConst) *safenum.Nat {
	return new(safenum.Nat).SetBytes(bigFromConst(c).Bytes())
}

func bigFromConst(c curveConst) *big.Int {
	m, err := mpi.ReadString(c.radix, c.value)
	if err != nil {
		panic("ecp: malformed built-in curve constant: " + err.Error())
	}
	return m.BigInt()
}

// GroupReadString populates a group from ASCII parameters (spec.md §6's
// group_read_string): the field prime, curve constant b, generator
// (gx, gy), and subgroup order n, all in the given radix. The resulting
// group always uses generic reduction; use UseKnownDP to get a group with
// a curve-specific fast path.
func GroupReadString(radix int, p, b, gx, gy, n string) (*Group, error) {
	pm, err := mpi.ReadString(radix, p)
	if err != nil {
		return nil, newError(ErrParse, "p: "+err.Error())
	}
	bm, err := mpi.ReadString(radix, b)
	if err != nil {
		return nil, newError(ErrParse, "b: "+err.Error())
	}
	nm, err := mpi.ReadString(radix, n)
	if err != nil {
		return nil, newError(ErrParse, "n: "+err.Error())
	}
	g0, err := PointReadString(radix, gx, gy)
	if err != nil {
		return nil, err
	}

	pNat := new(safenum.Nat).SetBytes(pm.BigInt().Bytes())
	grp := &Group{
		p:     safenum.ModulusFromNat(*pNat),
		pBig:  new(big.Int).Set(pm.BigInt()),
		B:     new(safenum.Nat).SetBytes(bm.BigInt().Bytes()),
		G:     g0,
		N:     nm,
		Pbits: pm.BigInt().BitLen(),
		Modp:  ModpGeneric,
	}
	grp.invTwo = new(safenum.Nat).ModInverse(new(safenum.Nat).SetUint64(2), grp.p)
	return grp, nil
}

// UseKnownDP populates a group from one of the five built-in NIST curve
// parameter tables (spec.md §6). Unknown identifiers fail with ErrGeneric.
func UseKnownDP(id NamedCurve) (*Group, error) {
	params, ok := knownCurves[id]
	if !ok {
		return nil, newError(ErrGeneric, "unknown named curve")
	}

	pBig := bigFromConst(params.p)
	grp := &Group{
		p:    safenum.ModulusFromNat(*new(safenum.Nat).SetBytes(pBig.Bytes())),
		pBig: pBig,
		B:    natFromConst(params.b),
		G: &AffinePoint{
			X: natFromConst(params.gx),
			Y: natFromConst(params.gy),
		},
		N:     mpi.FromBigInt(bigFromConst(params.n)),
		Pbits: pBig.BitLen(),
		Modp:  params.modp,
	}
	grp.invTwo = new(safenum.Nat).ModInverse(new(safenum.Nat).SetUint64(2), grp.p)
	return grp, nil
}
