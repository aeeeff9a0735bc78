package crypto

// Arithmetic in GF(2^8) modulo the AES polynomial x^8 + x^4 + x^3 + x + 1.

// xtime multiplies by x, i.e. by 2.
func xtime(b byte) byte {
	out := b << 1
	if b&0x80 != 0 {
		out ^= 0x1b
	}
	return out
}

func gfMul3(b byte) byte { return xtime(b) ^ b }

func gfMul9(b byte) byte { return xtime(xtime(xtime(b))) ^ b }

func gfMul11(b byte) byte { return xtime(xtime(xtime(b))^b) ^ b }

func gfMul13(b byte) byte { return xtime(xtime(xtime(b)^b)) ^ b }

func gfMul14(b byte) byte { return xtime(xtime(xtime(b)^b) ^ b) }

// gfMul multiplies two arbitrary field elements.
func gfMul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}
