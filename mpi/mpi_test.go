package mpi

import "testing"

func TestReadStringRadix(t *testing.T) {
	tests := []struct {
		radix int
		text  string
		want  int64
	}{
		{10, "12345", 12345},
		{16, "ff", 255},
		{2, "1010", 10},
	}
	for _, tt := range tests {
		m, err := ReadString(tt.radix, tt.text)
		if err != nil {
			t.Fatalf("ReadString(%d, %q) error: %v", tt.radix, tt.text, err)
		}
		if m.CmpInt(tt.want) != 0 {
			t.Errorf("ReadString(%d, %q) = %s, want %d", tt.radix, tt.text, m, tt.want)
		}
	}
}

func TestReadStringMalformed(t *testing.T) {
	if _, err := ReadString(16, "not-hex"); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestMsbAndGetBit(t *testing.T) {
	m, err := ReadString(16, "a5") // 1010 0101
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Msb(); got != 8 {
		t.Errorf("Msb() = %d, want 8", got)
	}
	want := []uint{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		if got := m.GetBit(i); got != w {
			t.Errorf("GetBit(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestShift(t *testing.T) {
	m, _ := ReadString(10, "1")
	if got := m.ShiftL(4); got.CmpInt(16) != 0 {
		t.Errorf("ShiftL(4) = %s, want 16", got)
	}
	m2, _ := ReadString(10, "16")
	if got := m2.ShiftR(4); got.CmpInt(1) != 0 {
		t.Errorf("ShiftR(4) = %s, want 1", got)
	}
}

func TestAddSub(t *testing.T) {
	a, _ := ReadString(10, "10")
	b, _ := ReadString(10, "3")
	if got := AddMPI(a, b); got.CmpInt(13) != 0 {
		t.Errorf("AddMPI = %s, want 13", got)
	}
	if got := SubMPI(a, b); got.CmpInt(7) != 0 {
		t.Errorf("SubMPI = %s, want 7", got)
	}
	neg, _ := ReadString(10, "-5")
	if got := AddAbs(neg, b); got.CmpInt(8) != 0 {
		t.Errorf("AddAbs = %s, want 8", got)
	}
}

func TestMulInt(t *testing.T) {
	a, _ := ReadString(10, "7")
	if got := MulInt(a, 6); got.CmpInt(42) != 0 {
		t.Errorf("MulInt = %s, want 42", got)
	}
}

func TestModAndInv(t *testing.T) {
	a, _ := ReadString(10, "17")
	n, _ := ReadString(10, "5")
	r, err := ModMPI(a, n)
	if err != nil {
		t.Fatal(err)
	}
	if r.CmpInt(2) != 0 {
		t.Errorf("ModMPI = %s, want 2", r)
	}

	three, _ := ReadString(10, "3")
	seven, _ := ReadString(10, "7")
	inv, err := InvMod(three, seven)
	if err != nil {
		t.Fatal(err)
	}
	// 3 * 5 = 15 = 1 mod 7
	if inv.CmpInt(5) != 0 {
		t.Errorf("InvMod(3, 7) = %s, want 5", inv)
	}

	six, _ := ReadString(10, "6")
	nine, _ := ReadString(10, "9")
	if _, err := InvMod(six, nine); err != ErrNotInvertible {
		t.Errorf("InvMod(6, 9) error = %v, want ErrNotInvertible", err)
	}
}
