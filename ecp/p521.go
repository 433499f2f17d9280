package ecp

import "math/big"

// p521Bits is the Mersenne-style split point for the P-521 quasi-reduction
// (spec.md §4.2): p = 2^521 - 1, so a value N < p^2 can be written as
// N = H*2^521 + L, and N ≡ H + L (mod p).
const p521Bits = 521

var p521Mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), p521Bits), big.NewInt(1))

// fastReduceP521 applies the bespoke P-521 quasi-reduction once. The result
// fits in at most p521Bits+1 bits (H and L are each at most p521Bits bits,
// so their sum needs at most one extra bit) and may still be >= p; the
// caller finishes with the bounded MOD_MUL fixup.
func fastReduceP521(n *big.Int) *big.Int {
	l := new(big.Int).And(n, p521Mask)
	h := new(big.Int).Rsh(n, p521Bits)
	return l.Add(l, h)
}
