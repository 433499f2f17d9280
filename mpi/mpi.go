// Package mpi implements the generic multi-precision-integer collaborator
// that the ecp engine is built on top of (spec.md §6): a signed
// arbitrary-precision integer with the narrow set of operations the engine
// needs — radix-based string import, bit-level inspection, shifts, and
// modular reduction/inversion. It is deliberately not constant-time; the
// ecp package's own side-channel posture (spec.md §5) accounts for that.
package mpi

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotInvertible is returned by InvMod when the argument shares a common
// factor with the modulus.
var ErrNotInvertible = errors.New("mpi: value not invertible modulo n")

// MPI is a signed arbitrary-precision integer, backed by math/big.
//
// The zero value is not ready for use; call New or one of the constructors
// below.
type MPI struct {
	v *big.Int
}

// New returns an MPI initialized to zero.
func New() *MPI {
	return &MPI{v: new(big.Int)}
}

// Free releases the value, resetting it to zero. Go's garbage collector
// reclaims the backing storage; Free exists so callers can mirror the
// collaborator's init/free lifecycle symmetrically.
func (m *MPI) Free() {
	m.v.SetInt64(0)
}

// Lset sets m to the given native integer.
func (m *MPI) Lset(x int64) *MPI {
	m.v.SetInt64(x)
	return m
}

// Copy sets m to a copy of src's value.
func (m *MPI) Copy(src *MPI) *MPI {
	m.v.Set(src.v)
	return m
}

// Clone returns a fresh MPI holding the same value as m.
func (m *MPI) Clone() *MPI {
	return &MPI{v: new(big.Int).Set(m.v)}
}

// ReadString parses text in the given radix (2, 10, 16, ...) into a new MPI.
// It fails with an error wrapping the package's malformed-input error on
// malformed input.
func ReadString(radix int, text string) (*MPI, error) {
	v, ok := new(big.Int).SetString(text, radix)
	if !ok {
		return nil, fmt.Errorf("mpi: malformed integer %q (radix %d): %w", text, radix, errMalformed)
	}
	return &MPI{v: v}, nil
}

var errMalformed = errors.New("malformed input")

// FromBigInt wraps an existing big.Int without copying. Used internally by
// ecp to bridge parameter tables into the MPI type.
func FromBigInt(v *big.Int) *MPI {
	return &MPI{v: v}
}

// BigInt returns the underlying value. The returned pointer must not be
// mutated by the caller.
func (m *MPI) BigInt() *big.Int {
	return m.v
}

// CmpInt compares m against a native integer, returning -1, 0, or 1.
func (m *MPI) CmpInt(x int64) int {
	return m.v.Cmp(big.NewInt(x))
}

// CmpMPI compares m against another MPI, returning -1, 0, or 1.
func (m *MPI) CmpMPI(o *MPI) int {
	return m.v.Cmp(o.v)
}

// Msb returns the number of bits needed to represent m, i.e. ⌊log2|m|⌋ + 1,
// with Msb(0) == 0.
func (m *MPI) Msb() int {
	return m.v.BitLen()
}

// GetBit returns the bit at the given position (0 = least significant).
func (m *MPI) GetBit(pos int) uint {
	return m.v.Bit(pos)
}

// AddMPI returns a + b.
func AddMPI(a, b *MPI) *MPI {
	return &MPI{v: new(big.Int).Add(a.v, b.v)}
}

// SubMPI returns a - b.
func SubMPI(a, b *MPI) *MPI {
	return &MPI{v: new(big.Int).Sub(a.v, b.v)}
}

// AddAbs returns |a| + |b|.
func AddAbs(a, b *MPI) *MPI {
	aAbs := new(big.Int).Abs(a.v)
	bAbs := new(big.Int).Abs(b.v)
	return &MPI{v: aAbs.Add(aAbs, bAbs)}
}

// ShiftL returns m shifted left by n bits.
func (m *MPI) ShiftL(n int) *MPI {
	return &MPI{v: new(big.Int).Lsh(m.v, uint(n))}
}

// ShiftR returns m shifted right by n bits.
func (m *MPI) ShiftR(n int) *MPI {
	return &MPI{v: new(big.Int).Rsh(m.v, uint(n))}
}

// MulMPI returns a * b.
func MulMPI(a, b *MPI) *MPI {
	return &MPI{v: new(big.Int).Mul(a.v, b.v)}
}

// MulInt returns a * b for a native multiplier.
func MulInt(a *MPI, b int64) *MPI {
	return &MPI{v: new(big.Int).Mul(a.v, big.NewInt(b))}
}

// ModMPI returns a mod n, always in [0, n).
func ModMPI(a, n *MPI) (*MPI, error) {
	if n.v.Sign() == 0 {
		return nil, errors.New("mpi: modulus is zero")
	}
	r := new(big.Int).Mod(a.v, n.v)
	return &MPI{v: r}, nil
}

// InvMod returns the modular inverse of a modulo n, failing with
// ErrNotInvertible when gcd(a, n) != 1.
func InvMod(a, n *MPI) (*MPI, error) {
	r := new(big.Int).ModInverse(a.v, n.v)
	if r == nil {
		return nil, ErrNotInvertible
	}
	return &MPI{v: r}, nil
}

// String renders m in base 10, matching the collaborator's diagnostic
// formatting needs.
func (m *MPI) String() string {
	return m.v.String()
}
