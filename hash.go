package crypto

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Hash identifies a hash function.
type Hash int

const (
	MD4 Hash = iota + 1
	SHA224
	SHA256
	SHA384
	SHA512
	SM3
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
)

var hashes = map[Hash]struct {
	name      string
	size      int
	blockSize int
	sum       func([]byte) []byte
}{
	MD4:      {"md4", 16, 64, func(b []byte) []byte { d := SumMD4(b); return d[:] }},
	SHA224:   {"sha224", 28, 64, func(b []byte) []byte { d := SumSHA224(b); return d[:] }},
	SHA256:   {"sha256", 32, 64, func(b []byte) []byte { d := SumSHA256(b); return d[:] }},
	SHA384:   {"sha384", 48, 128, func(b []byte) []byte { d := SumSHA384(b); return d[:] }},
	SHA512:   {"sha512", 64, 128, func(b []byte) []byte { d := SumSHA512(b); return d[:] }},
	SM3:      {"sm3", 32, 64, func(b []byte) []byte { d := SumSM3(b); return d[:] }},
	SHA3_224: {"sha3_224", 28, 144, func(b []byte) []byte { d := SumSHA3_224(b); return d[:] }},
	SHA3_256: {"sha3_256", 32, 136, func(b []byte) []byte { d := SumSHA3_256(b); return d[:] }},
	SHA3_384: {"sha3_384", 48, 104, func(b []byte) []byte { d := SumSHA3_384(b); return d[:] }},
	SHA3_512: {"sha3_512", 64, 72, func(b []byte) []byte { d := SumSHA3_512(b); return d[:] }},
}

// Hashes lists every supported hash function.
func Hashes() []Hash {
	return []Hash{MD4, SHA224, SHA256, SHA384, SHA512, SM3, SHA3_224, SHA3_256, SHA3_384, SHA3_512}
}

// ParseHash maps a name such as "sha3_256" to its Hash. Dashes are accepted
// in place of underscores.
func ParseHash(name string) (Hash, error) {
	name = strings.ReplaceAll(strings.ToLower(name), "-", "_")
	for _, h := range Hashes() {
		if hashes[h].name == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Available reports whether h names a supported hash function.
func (h Hash) Available() bool {
	_, ok := hashes[h]
	return ok
}

func (h Hash) String() string {
	if info, ok := hashes[h]; ok {
		return info.name
	}
	return fmt.Sprintf("Hash(%d)", int(h))
}

// Size returns the digest length in bytes.
func (h Hash) Size() int { return hashes[h].size }

// BlockSize returns the number of input bytes absorbed per compression.
func (h Hash) BlockSize() int { return hashes[h].blockSize }

// Sum returns the digest of data. It panics if h is not available.
func (h Hash) Sum(data []byte) []byte {
	info, ok := hashes[h]
	if !ok {
		panic("crypto: requested hash function " + h.String() + " is unavailable")
	}
	return info.sum(data)
}

// mdPad applies Merkle-Damgard strengthening: 0x80, zeros, then the message
// length in bits as a lenSize-byte integer, up to a multiple of blockSize.
func mdPad(data []byte, blockSize, lenSize int, bigEndian bool) []byte {
	n := (len(data) + 1 + lenSize + blockSize - 1) / blockSize * blockSize
	out := make([]byte, n)
	copy(out, data)
	out[len(data)] = 0x80
	bitLen := uint64(len(data)) << 3
	// out is zeroed, so the high half of a 128-bit length is already in place
	if bigEndian {
		binary.BigEndian.PutUint64(out[n-8:], bitLen)
	} else {
		binary.LittleEndian.PutUint64(out[n-lenSize:], bitLen)
	}
	return out
}
