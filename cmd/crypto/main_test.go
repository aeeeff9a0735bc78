package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiegec/crypto"
)

func runCLI(t *testing.T, stdin []byte, args ...string) ([]byte, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return stdout.Bytes(), stderr.String(), err
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("The quick brown fox jumps over the lazy dog")
	keys := map[string]string{
		"des":    "133457799BBCDFF1",
		"aes128": "000102030405060708090A0B0C0D0E0F",
		"sm4":    "0123456789ABCDEFFEDCBA9876543210",
		"rc4":    "4B6579",
	}
	for algo, key := range keys {
		ct, _, err := runCLI(t, plaintext, "-e", "-a", algo, "-k", key, "-", "-")
		require.NoError(t, err, algo)
		assert.NotEqual(t, plaintext, ct)

		pt, _, err := runCLI(t, ct, "-d", "-a", algo, "-k", key, "-", "-")
		require.NoError(t, err, algo)
		assert.Equal(t, plaintext, pt, algo)
	}
}

func TestEncryptPadsWithPKCS7(t *testing.T) {
	key := "133457799BBCDFF1"
	iv := "000000000000000F"
	in := mustParseHex(t, "0123456789ABCDEF0123456789ABCDEF")

	ct, _, err := runCLI(t, in, "-e", "-a", "des", "-k", key, "-i", iv, "-", "-")
	require.NoError(t, err)
	require.Len(t, ct, 24)
	assert.Equal(t, "AE26A69343ACEF305E7FE8F06ECE74E7", crypto.BytesToHex(ct[:16]))
}

func TestDigest(t *testing.T) {
	out, _, err := runCLI(t, []byte("abc"), "-D", "-a", "sm3", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, "66C7F0F462EEEDD9D1F2D46BDC10E4E24167C4875CF2F7A2297DA02B8F4BA8E0", crypto.BytesToHex(out))

	out, _, err = runCLI(t, nil, "-D", "-a", "md4", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, "31D6CFE0D16AE931B73C59D7E0C089C0", crypto.BytesToHex(out))
}

func TestLFSR(t *testing.T) {
	out, stderr, err := runCLI(t, []byte("00100110\n"), "-l", "-a", "bm", "-v", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, "10011", string(out))
	assert.Contains(t, stderr, "f_8: 1 + x^3 + x^4 l_8: 4")

	_, _, err = runCLI(t, []byte("0012"), "-l", "-", "-")
	assert.ErrorIs(t, err, crypto.ErrInvalidSequence)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(in, []byte("abc"), 0o644))

	_, _, err := runCLI(t, nil, "-D", "-a", "sha256", in, out)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", crypto.BytesToHex(got))

	_, _, err = runCLI(t, nil, "-D", "-a", "sha256", filepath.Join(dir, "missing"), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read file")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no mode", []string{"-a", "des", "-", "-"}, "No mode specified"},
		{"two modes", []string{"-e", "-d", "-a", "des", "-", "-"}, "Only one of"},
		{"missing output", []string{"-e", "-a", "des", "-"}, "Wrong number of arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runCLI(t, nil, tt.args...)
			require.ErrorIs(t, err, errUsage)
			assert.Contains(t, stderr, tt.msg)
			assert.Contains(t, stderr, "Usage: crypto OPTIONS INPUT OUTPUT")
		})
	}
}

func TestBadParameters(t *testing.T) {
	_, _, err := runCLI(t, []byte("x"), "-e", "-a", "des", "-k", "0011", "-", "-")
	assert.ErrorIs(t, err, crypto.ErrPrecondition)

	_, _, err = runCLI(t, []byte("x"), "-e", "-a", "rc6", "-k", "00", "-", "-")
	assert.ErrorIs(t, err, crypto.ErrUnknownAlgorithm)

	_, _, err = runCLI(t, []byte("x"), "-e", "-a", "des", "-k", "zz", "-", "-")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid key"))

	// wrong key leaves garbage padding behind
	ct, _, err := runCLI(t, []byte("secret"), "-e", "-a", "aes128", "-k", strings.Repeat("11", 16), "-", "-")
	require.NoError(t, err)
	_, _, err = runCLI(t, ct, "-d", "-a", "aes128", "-k", strings.Repeat("22", 16), "-", "-")
	assert.Error(t, err)
}

func mustParseHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := crypto.ParseHex(s)
	require.NoError(t, err)
	return b
}
