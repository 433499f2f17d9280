package aesni

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestSupportedIsMemoized(t *testing.T) {
	first := Supported()
	for i := 0; i < 3; i++ {
		if Supported() != first {
			t.Fatal("Supported() result changed between calls")
		}
	}
}

func TestXcryptECBRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	rand.Read(key)
	ctx, err := NewContext(key)
	if err != nil {
		t.Fatal(err)
	}

	plain := make([]byte, BlockSize)
	rand.Read(plain)
	cipherText := make([]byte, BlockSize)
	if err := ctx.XcryptECB(Encrypt, plain, cipherText); err != nil {
		t.Fatal(err)
	}

	recovered := make([]byte, BlockSize)
	if err := ctx.XcryptECB(Decrypt, cipherText, recovered); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(plain, recovered) {
		t.Errorf("ECB round trip mismatch")
	}
}

func TestXcryptCBCRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	rand.Read(key)
	ctx, err := NewContext(key)
	if err != nil {
		t.Fatal(err)
	}

	iv := make([]byte, BlockSize)
	rand.Read(iv)
	plain := make([]byte, BlockSize*4)
	rand.Read(plain)

	cipherText := make([]byte, len(plain))
	if err := ctx.XcryptCBC(Encrypt, iv, plain, cipherText); err != nil {
		t.Fatal(err)
	}

	recovered := make([]byte, len(plain))
	if err := ctx.XcryptCBC(Decrypt, iv, cipherText, recovered); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(plain, recovered) {
		t.Errorf("CBC round trip mismatch")
	}
}

func TestNewContextBadKeyLength(t *testing.T) {
	if _, err := NewContext(make([]byte, 7)); err == nil {
		t.Fatal("expected error for bad key length")
	}
}
