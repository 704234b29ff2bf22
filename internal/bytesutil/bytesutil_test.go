package bytesutil

import "testing"

func TestUint64LE(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		want uint64
	}{
		{"zero", []byte{0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{"one", []byte{1, 0, 0, 0, 0, 0, 0, 0}, 1},
		{"second-byte", []byte{0, 1, 0, 0, 0, 0, 0, 0}, 256},
		{"trailing-extra-bytes-ignored", []byte{18, 0, 0, 0, 0, 0, 0, 0, 0xFF, 0xFF}, 18},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Uint64LE(c.b); got != c.want {
				t.Errorf("Uint64LE(%v) = %d; want %d", c.b, got, c.want)
			}
		})
	}
}

func TestConstantTimeEqual(t *testing.T) {
	a := []byte("hello")
	b := []byte("hello")
	c := []byte("hellp")
	if !ConstantTimeEqual(a, b) {
		t.Error("expected equal byte slices to compare equal")
	}
	if ConstantTimeEqual(a, c) {
		t.Error("expected differing byte slices to compare unequal")
	}
	if ConstantTimeEqual(a, []byte("hell")) {
		t.Error("expected differing-length byte slices to compare unequal")
	}
}

func TestDecodeBase64(t *testing.T) {
	got, err := DecodeBase64("aGVsbG8=")
	if err != nil {
		t.Fatalf("DecodeBase64 failed: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("DecodeBase64 = %q; want %q", got, "hello")
	}

	if _, err := DecodeBase64("not base64!!"); err == nil {
		t.Error("expected error decoding invalid base64")
	}
}
