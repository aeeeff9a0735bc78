package crypto

import (
	"encoding/binary"
	"math/bits"
)

// GB/T 32905-2016.

var sm3IV = [8]uint32{
	0x7380166F, 0x4914B2B9, 0x172442D7, 0xDA8A0600,
	0xA96F30BC, 0x163138AA, 0xE38DEE4D, 0xB0FB0E4E,
}

// SumSM3 returns the SM3 digest of data.
func SumSM3(data []byte) [32]byte {
	padded := mdPad(data, 64, 8, true)
	v := sm3IV
	for off := 0; off < len(padded); off += 64 {
		sm3Block(&v, padded[off:off+64])
	}
	var out [32]byte
	for i, x := range v {
		binary.BigEndian.PutUint32(out[4*i:], x)
	}
	return out
}

// sm3T[j] is the round constant T_j already rotated left by j.
var sm3T = func() (t [64]uint32) {
	for j := range t {
		if j < 16 {
			t[j] = bits.RotateLeft32(0x79CC4519, j)
		} else {
			t[j] = bits.RotateLeft32(0x7A879D8A, j%32)
		}
	}
	return t
}()

func sm3Block(v *[8]uint32, block []byte) {
	// W_0..W_67; W'_j is computed inline as W_j ^ W_j+4.
	var w [68]uint32
	for j := 0; j < 16; j++ {
		w[j] = binary.BigEndian.Uint32(block[4*j:])
	}
	for j := 16; j < 68; j++ {
		w[j] = sm3P1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^
			bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
	}

	a, b, c, d := v[0], v[1], v[2], v[3]
	e, f, g, h := v[4], v[5], v[6], v[7]
	for j := 0; j < 64; j++ {
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+sm3T[j], 7)
		ss2 := ss1 ^ a12
		tt1 := sm3FF(j, a, b, c) + d + ss2 + (w[j] ^ w[j+4])
		tt2 := sm3GG(j, e, f, g) + h + ss1 + w[j]
		a, b, c, d = tt1, a, bits.RotateLeft32(b, 9), c
		e, f, g, h = sm3P0(tt2), e, bits.RotateLeft32(f, 19), g
	}

	for i, x := range [8]uint32{a, b, c, d, e, f, g, h} {
		v[i] ^= x
	}
}

func sm3FF(j int, x, y, z uint32) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return x&y | x&z | y&z
}

func sm3GG(j int, x, y, z uint32) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return x&y | ^x&z
}

func sm3P0(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17) }
func sm3P1(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23) }
