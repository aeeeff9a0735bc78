package crypto

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generates reports whether the LFSR reproduces seq from its first L bits.
func generates(l *LFSR, seq []byte) bool {
	for n := l.Complexity; n < len(seq); n++ {
		var bit byte
		for j := 1; j < len(l.Poly); j++ {
			bit ^= l.Poly[j] & (seq[n-j] - '0')
		}
		if bit != seq[n]-'0' {
			return false
		}
	}
	return true
}

func TestBerlekampMassey(t *testing.T) {
	tests := []struct {
		seq  string
		poly string
		l    int
	}{
		{"0", "1", 0},
		{"1", "11", 1},
		{"0000", "1", 0},
		{"00100110", "10011", 4},
		{"10101111", "10011", 4},
		{"001101110", "100101", 5},
		{"1101011100100001", "111000011", 8},
	}
	for _, tt := range tests {
		lfsr, err := BerlekampMassey([]byte(tt.seq))
		require.NoError(t, err)
		if got := string(lfsr.Poly.Bits()); got != tt.poly || lfsr.Complexity != tt.l {
			t.Fatalf("BM(%s) = %s, L=%d, want %s, L=%d", tt.seq, got, lfsr.Complexity, tt.poly, tt.l)
		}
		assert.Len(t, lfsr.Steps, len(tt.seq)+1)
		assert.True(t, generates(lfsr, []byte(tt.seq)), tt.seq)
	}
}

func TestBerlekampMasseySteps(t *testing.T) {
	lfsr, err := BerlekampMassey([]byte("00100110"))
	require.NoError(t, err)

	want := []struct {
		poly string
		l    int
	}{
		{"1", 0}, {"1", 0}, {"1", 0}, {"1001", 3}, {"1001", 3},
		{"1001", 3}, {"1001", 3}, {"10011", 4}, {"10011", 4},
	}
	require.Len(t, lfsr.Steps, len(want))
	for i, w := range want {
		assert.Equal(t, w.poly, string(lfsr.Steps[i].Poly.Bits()), "step %d", i)
		assert.Equal(t, w.l, lfsr.Steps[i].Complexity, "step %d", i)
	}
	assert.Equal(t, "1 + x^3 + x^4", lfsr.Poly.String())
}

func TestBerlekampMasseyRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		seq := make([]byte, 1+rng.Intn(64))
		for j := range seq {
			seq[j] = '0' + byte(rng.Intn(2))
		}
		lfsr, err := BerlekampMassey(seq)
		require.NoError(t, err)
		require.True(t, generates(lfsr, seq), "%s", seq)
		require.LessOrEqual(t, lfsr.Poly.Degree(), lfsr.Complexity)
		require.LessOrEqual(t, lfsr.Complexity, len(seq))
	}
}

// An m-sequence from a primitive polynomial of degree 5 has linear
// complexity 5 once at least 10 bits are seen.
func TestBerlekampMasseyMSequence(t *testing.T) {
	// s[n] = s[n-2] ^ s[n-5], i.e. f(x) = 1 + x^2 + x^5
	seq := []byte("10000")
	for n := 5; n < 62; n++ {
		seq = append(seq, '0'+((seq[n-2]-'0')^(seq[n-5]-'0')))
	}
	lfsr, err := BerlekampMassey(seq)
	require.NoError(t, err)
	assert.Equal(t, 5, lfsr.Complexity)
	assert.Equal(t, "101001", string(lfsr.Poly.Bits()))
}

func TestBerlekampMasseyInvalid(t *testing.T) {
	_, err := BerlekampMassey(nil)
	assert.ErrorIs(t, err, ErrInvalidSequence)

	_, err = BerlekampMassey([]byte("0102"))
	assert.ErrorIs(t, err, ErrInvalidSequence)

	_, err = BerlekampMassey([]byte("0101\n"))
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestPolynomial(t *testing.T) {
	assert.Equal(t, "0", Polynomial{0, 0}.String())
	assert.Equal(t, -1, Polynomial{0, 0}.Degree())
	assert.Equal(t, "1 + x", Polynomial{1, 1, 0}.String())
	assert.Equal(t, "11", string(Polynomial{1, 1, 0}.Bits()))
	assert.Equal(t, 1, Polynomial{1, 1, 0}.Degree())
}
