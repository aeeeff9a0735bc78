package crypto

import (
	"encoding/binary"
	"math/bits"
)

// RFC 1320.

var md4IV = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// Message word order and shifts for rounds 2 and 3.
var (
	md4Round2X = [16]uint8{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
	md4Round3X = [16]uint8{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

	md4Round1S = [4]int{3, 7, 11, 19}
	md4Round2S = [4]int{3, 5, 9, 13}
	md4Round3S = [4]int{3, 9, 11, 15}
)

// SumMD4 returns the MD4 digest of data.
func SumMD4(data []byte) [16]byte {
	padded := mdPad(data, 64, 8, false)
	h := md4IV
	for off := 0; off < len(padded); off += 64 {
		md4Block(&h, padded[off:off+64])
	}
	var out [16]byte
	for i, v := range h {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}

func md4F(x, y, z uint32) uint32 { return x&y | ^x&z }
func md4G(x, y, z uint32) uint32 { return x&y | x&z | y&z }
func md4H(x, y, z uint32) uint32 { return x ^ y ^ z }

func md4Block(h *[4]uint32, block []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[4*i:])
	}
	// r[0..3] is a, b, c, d; each step updates r[(4-i%4)%4], which walks
	// a, d, c, b as in the RFC.
	r := *h
	for i := 0; i < 16; i++ {
		a := (4 - i%4) % 4
		b, c, d := r[(a+1)%4], r[(a+2)%4], r[(a+3)%4]
		r[a] = bits.RotateLeft32(r[a]+md4F(b, c, d)+x[i], md4Round1S[i%4])
	}
	for i := 0; i < 16; i++ {
		a := (4 - i%4) % 4
		b, c, d := r[(a+1)%4], r[(a+2)%4], r[(a+3)%4]
		r[a] = bits.RotateLeft32(r[a]+md4G(b, c, d)+x[md4Round2X[i]]+0x5a827999, md4Round2S[i%4])
	}
	for i := 0; i < 16; i++ {
		a := (4 - i%4) % 4
		b, c, d := r[(a+1)%4], r[(a+2)%4], r[(a+3)%4]
		r[a] = bits.RotateLeft32(r[a]+md4H(b, c, d)+x[md4Round3X[i]]+0x6ed9eba1, md4Round3S[i%4])
	}
	for i := range h {
		h[i] += r[i]
	}
}
