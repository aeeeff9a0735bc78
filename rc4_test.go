package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRC4(t *testing.T) {
	tests := []struct {
		key, plaintext, ciphertext string
	}{
		{"Key", "Plaintext", "BBF316E8D940AF0AD3"},
		{"Wiki", "pedia", "1021BF0420"},
		{"Secret", "Attack at dawn", "45A01F645FC35B383552544B9BF5"},
	}
	for _, tt := range tests {
		ct, err := RC4([]byte(tt.plaintext), []byte(tt.key))
		require.NoError(t, err)
		if got := BytesToHex(ct); got != tt.ciphertext {
			t.Fatalf("RC4(%q, %q) = %s, want %s", tt.key, tt.plaintext, got, tt.ciphertext)
		}

		pt, err := RC4(ct, []byte(tt.key))
		require.NoError(t, err)
		assert.Equal(t, tt.plaintext, string(pt))
	}
}

func TestRC4MaxKey(t *testing.T) {
	key := make([]byte, 256)
	for i := range key {
		key[i] = byte(i)
	}
	out, err := RC4(make([]byte, 8), key)
	require.NoError(t, err)
	assert.Equal(t, "5E2EB7B20D86864F", BytesToHex(out))
}

func TestRC4BadKey(t *testing.T) {
	for _, n := range []int{0, 257} {
		_, err := RC4([]byte("x"), make([]byte, n))
		require.ErrorIs(t, err, ErrPrecondition)

		var se *SizeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 1, se.Min)
		assert.Equal(t, 256, se.Want)
		assert.Contains(t, se.Error(), "want 1..256")
	}
}

func TestRC4Empty(t *testing.T) {
	out, err := RC4(nil, []byte("k"))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func BenchmarkRC4(b *testing.B) {
	buf := make([]byte, 2048)
	key := []byte("benchmark key")
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		if _, err := RC4(buf, key); err != nil {
			b.Fatal(err)
		}
	}
}
