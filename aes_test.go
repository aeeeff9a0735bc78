package crypto

import (
	stdaes "crypto/aes"
	"crypto/cipher"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aesTests = []struct {
	key, iv, plaintext, ciphertext string
}{
	{
		"5468617473206D79204B756E67204675", "00000000000000000000000000000000",
		"54776F204F6E65204E696E652054776F",
		"29C3505F571420F6402299B31A02D73A",
	},
	// FIPS-197 appendix C.1
	{
		"000102030405060708090A0B0C0D0E0F", "00000000000000000000000000000000",
		"00112233445566778899AABBCCDDEEFF",
		"69C4E0D86A7B0430D8CDB78070B4C55A",
	},
}

func TestAES128CBC(t *testing.T) {
	for _, tt := range aesTests {
		key, iv := mustHex(t, tt.key), mustHex(t, tt.iv)
		pt := mustHex(t, tt.plaintext)

		ct, err := AES128CBC(Encrypt, pt, key, iv)
		require.NoError(t, err)
		if got := BytesToHex(ct); got != tt.ciphertext {
			t.Fatalf("AES-128-CBC(%s) = %s, want %s", tt.plaintext, got, tt.ciphertext)
		}

		back, err := AES128CBC(Decrypt, ct, key, iv)
		require.NoError(t, err)
		assert.Equal(t, pt, back)
	}
}

func TestAESKeyExpansion(t *testing.T) {
	// FIPS-197 appendix A.1
	b, err := NewAES128(mustHex(t, "2B7E151628AED2A6ABF7158809CF4F3C"))
	require.NoError(t, err)
	w := b.(*aesCipher).w
	assert.Equal(t, []uint32{0xa0fafe17, 0x88542cb1, 0x23a33939, 0x2a6c7605}, w[4:8])
	assert.Equal(t, []uint32{0xd014f9a8, 0xc9ee2589, 0xe13f0cc8, 0xb6630ca6}, w[40:44])
}

func TestAESInverseSBox(t *testing.T) {
	for i := 0; i < 256; i++ {
		if got := aesInvSBox[aesSBox[i]]; got != byte(i) {
			t.Fatalf("InvSBox(SBox(%#02x)) = %#02x", i, got)
		}
	}
}

func TestAESMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 32; i++ {
		key := make([]byte, 16)
		iv := make([]byte, 16)
		pt := make([]byte, 16*(i+1))
		rng.Read(key)
		rng.Read(iv)
		rng.Read(pt)

		ref, err := stdaes.NewCipher(key)
		require.NoError(t, err)
		want := make([]byte, len(pt))
		cipher.NewCBCEncrypter(ref, iv).CryptBlocks(want, pt)

		got, err := AES128CBC(Encrypt, pt, key, iv)
		require.NoError(t, err)
		require.Equal(t, want, got)

		back, err := AES128CBC(Decrypt, got, key, iv)
		require.NoError(t, err)
		require.Equal(t, pt, back)
	}
}

func TestAESBadKey(t *testing.T) {
	for _, n := range []int{0, 8, 24, 32} {
		_, err := NewAES128(make([]byte, n))
		require.ErrorIs(t, err, ErrPrecondition, "key length %d", n)
	}
}

func BenchmarkAES128CBC(b *testing.B) {
	benchmarkCBC(b, AES128)
}
