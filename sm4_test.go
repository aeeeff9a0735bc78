package crypto

import (
	"math/rand"
	"testing"

	gmsm4 "github.com/emmansun/gmsm/sm4"
	"github.com/stretchr/testify/require"
)

func TestSM4EncryptDecrypt(t *testing.T) {
	key := mustHex(t, "0123456789ABCDEFFEDCBA9876543210")
	iv := make([]byte, 16)

	ciphertext, err := SM4CBC(Encrypt, key, key, iv)
	require.NoError(t, err)

	expectedCiphertext := "681EDF34D206965E86B3E94F536E4246"
	if got := BytesToHex(ciphertext); got != expectedCiphertext {
		t.Fatalf("ciphertext = %s, want %s", got, expectedCiphertext)
	}

	decrypted, err := SM4CBC(Decrypt, ciphertext, key, iv)
	require.NoError(t, err)
	require.Equal(t, key, decrypted)
}

// GB/T 32907-2016 appendix A.2: one million encryptions of the same block.
func TestSM4MillionRounds(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	key := mustHex(t, "0123456789ABCDEFFEDCBA9876543210")
	b, err := NewSM4(key)
	require.NoError(t, err)

	block := append([]byte(nil), key...)
	for i := 0; i < 1000000; i++ {
		b.Encrypt(block, block)
	}
	require.Equal(t, "595298C7C6FD271F0402F804C33D3F66", BytesToHex(block))
}

func TestSM4MatchesGMSM(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 32; i++ {
		key := make([]byte, 16)
		src := make([]byte, 16)
		rng.Read(key)
		rng.Read(src)

		ref, err := gmsm4.NewCipher(key)
		require.NoError(t, err)
		want := make([]byte, 16)
		ref.Encrypt(want, src)

		b, err := NewSM4(key)
		require.NoError(t, err)
		got := make([]byte, 16)
		b.Encrypt(got, src)
		require.Equal(t, want, got)

		b.Decrypt(got, got)
		require.Equal(t, src, got)
	}
}

func BenchmarkSM4CBC(b *testing.B) {
	benchmarkCBC(b, SM4)
}
