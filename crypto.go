// Package crypto implements classical cryptographic primitives: the DES,
// AES-128 and SM4 block ciphers in CBC mode, the RC4 stream cipher, the MD4,
// SHA-2, SM3 and SHA-3 hash functions, and Berlekamp-Massey LFSR synthesis.
//
// Every primitive works on fully buffered input and returns a freshly
// allocated output.
package crypto

import (
	"encoding/hex"
	"strings"
)

// Direction selects encryption or decryption.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// BytesToHex converts a byte slice to an uppercase hex string.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// ParseHex converts a hex string to a byte slice. An optional 0x prefix and
// surrounding whitespace are ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
