package crypto

import (
	"encoding/binary"
	"math/bits"
)

// FIPS 202.

var keccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A,
	0x8000000080008000, 0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008A,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// keccakRho and keccakPi follow the (x, y) walk starting at (1, 0): step t
// rotates lane keccakPi[t] by keccakRho[t].
var keccakRho, keccakPi = func() (rho, pi [24]int) {
	x, y := 1, 0
	for t := 0; t < 24; t++ {
		rho[t] = (t + 1) * (t + 2) / 2 % 64
		pi[t] = x + 5*y
		x, y = y, (2*x+3*y)%5
	}
	return rho, pi
}()

// SumSHA3_224 returns the SHA3-224 digest of data.
func SumSHA3_224(data []byte) [28]byte {
	var out [28]byte
	sha3Sum(out[:], data)
	return out
}

// SumSHA3_256 returns the SHA3-256 digest of data.
func SumSHA3_256(data []byte) [32]byte {
	var out [32]byte
	sha3Sum(out[:], data)
	return out
}

// SumSHA3_384 returns the SHA3-384 digest of data.
func SumSHA3_384(data []byte) [48]byte {
	var out [48]byte
	sha3Sum(out[:], data)
	return out
}

// SumSHA3_512 returns the SHA3-512 digest of data.
func SumSHA3_512(data []byte) [64]byte {
	var out [64]byte
	sha3Sum(out[:], data)
	return out
}

// sha3Sum absorbs data with capacity 2*len(out) and squeezes len(out) bytes.
// Every SHA-3 output is shorter than the rate, so one squeeze suffices.
func sha3Sum(out, data []byte) {
	rate := 200 - 2*len(out)

	// M || 01 || 10*1
	n := (len(data) + 1 + rate - 1) / rate * rate
	padded := make([]byte, n)
	copy(padded, data)
	padded[len(data)] = 0x06
	padded[n-1] |= 0x80

	var a [25]uint64
	for off := 0; off < n; off += rate {
		for i := 0; i < rate/8; i++ {
			a[i] ^= binary.LittleEndian.Uint64(padded[off+8*i:])
		}
		keccakF1600(&a)
	}

	var lanes [200]byte
	for i, v := range a {
		binary.LittleEndian.PutUint64(lanes[8*i:], v)
	}
	copy(out, lanes[:])
}

// keccakF1600 applies the 24-round permutation. Lane (x, y) is a[x+5*y].
func keccakF1600(a *[25]uint64) {
	var c, d [5]uint64
	var b [25]uint64
	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := range a {
			a[i] ^= d[i%5]
		}

		// rho
		for t := 0; t < 24; t++ {
			a[keccakPi[t]] = bits.RotateLeft64(a[keccakPi[t]], keccakRho[t])
		}

		// pi: A'[x, y] = A[(x+3y) mod 5, x]
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[x+5*y] = a[(x+3*y)%5+5*x]
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = b[x+5*y] ^ ^b[(x+1)%5+5*y]&b[(x+2)%5+5*y]
			}
		}

		// iota
		a[0] ^= keccakRC[round]
	}
}
