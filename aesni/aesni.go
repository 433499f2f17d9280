// Package aesni implements the AES block-engine collaborator described in
// spec.md §6: a block cipher context plus ECB/CBC bulk operations,
// reporting whether the current CPU offers hardware AES acceleration.
//
// Go's crypto/aes already dispatches to hardware AES instructions through
// its assembly implementation when the CPU supports them, so this package
// is a thin ECB/CBC front-end over it; Supported exposes the same
// CPU-feature probe the hardware path relies on, sourced from
// golang.org/x/sys/cpu rather than a hand-rolled CPUID sentinel.
package aesni

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"sync"

	"golang.org/x/sys/cpu"
)

// BlockSize is the AES block size in bytes.
const BlockSize = aes.BlockSize

// Mode selects encryption or decryption direction.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

var (
	ErrBadKeyLength   = errors.New("aesni: key must be 16, 24, or 32 bytes")
	ErrBadBufferLen   = errors.New("aesni: buffer length is not a multiple of the block size")
	ErrBadIVLen       = errors.New("aesni: IV must be exactly one block")
	ErrBufferMismatch = errors.New("aesni: input and output buffers must be the same length")
)

var (
	once      sync.Once
	supported bool
)

// Supported reports whether this CPU has hardware AES acceleration. The
// probe runs once and the result is memoized, replacing the
// "0xdeadbabe, not yet probed" sentinel pattern with an idempotent,
// once-initialized cell.
func Supported() bool {
	once.Do(func() {
		supported = cpu.X86.HasAES || cpu.ARM64.HasAES
	})
	return supported
}

// Context holds AES round keys, already expanded for both directions, the
// way the collaborator's opaque AES context does. The caller is
// responsible for only ever constructing it through NewContext.
type Context struct {
	block cipher.Block
}

// NewContext expands a 16/24/32-byte key into round keys.
func NewContext(key []byte) (*Context, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrBadKeyLength
	}
	return &Context{block: block}, nil
}

// XcryptECB encrypts or decrypts exactly one 16-byte block in place between
// in16 and out16.
func (c *Context) XcryptECB(mode Mode, in16, out16 []byte) error {
	if len(in16) != BlockSize || len(out16) != BlockSize {
		return ErrBadBufferLen
	}
	switch mode {
	case Encrypt:
		c.block.Encrypt(out16, in16)
	case Decrypt:
		c.block.Decrypt(out16, in16)
	}
	return nil
}

// XcryptCBC encrypts or decrypts len bytes of in using CBC chaining seeded
// by the given 16-byte IV, writing to out. len must be a multiple of
// BlockSize. The caller owns the round-key alignment and round-count
// correctness implied by Context; this layer only drives the chaining.
func (c *Context) XcryptCBC(mode Mode, iv16 []byte, in, out []byte) error {
	if len(iv16) != BlockSize {
		return ErrBadIVLen
	}
	if len(in) != len(out) {
		return ErrBufferMismatch
	}
	if len(in)%BlockSize != 0 {
		return ErrBadBufferLen
	}

	ivCopy := make([]byte, BlockSize)
	copy(ivCopy, iv16)

	switch mode {
	case Encrypt:
		cipher.NewCBCEncrypter(c.block, ivCopy).CryptBlocks(out, in)
	case Decrypt:
		cipher.NewCBCDecrypter(c.block, ivCopy).CryptBlocks(out, in)
	}
	return nil
}
