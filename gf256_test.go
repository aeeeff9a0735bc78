package crypto

import "testing"

func TestGFConstantMultipliers(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		for _, tt := range []struct {
			k   byte
			got byte
		}{
			{2, xtime(b)},
			{3, gfMul3(b)},
			{9, gfMul9(b)},
			{11, gfMul11(b)},
			{13, gfMul13(b)},
			{14, gfMul14(b)},
		} {
			if want := gfMul(b, tt.k); tt.got != want {
				t.Fatalf("%#02x * %d = %#02x, want %#02x", b, tt.k, tt.got, want)
			}
		}
	}
}

func TestGFMul(t *testing.T) {
	// FIPS-197 section 4.2
	if got := gfMul(0x57, 0x83); got != 0xc1 {
		t.Fatalf("57 * 83 = %02x, want c1", got)
	}
	if got := gfMul(0x57, 0x13); got != 0xfe {
		t.Fatalf("57 * 13 = %02x, want fe", got)
	}
}

// The inverse MixColumns matrix undoes the forward one.
func TestGFMixColumnsInverse(t *testing.T) {
	var s aesState
	for i := range s {
		s[i] = byte(i*37 + 11)
	}
	orig := s
	s.mixColumns()
	if s == orig {
		t.Fatal("mixColumns left the state unchanged")
	}
	s.invMixColumns()
	if s != orig {
		t.Fatalf("invMixColumns(mixColumns(x)) = %x, want %x", s, orig)
	}
}
