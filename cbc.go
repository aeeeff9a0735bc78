package crypto

import (
	"crypto/cipher"
	"fmt"
)

// CBC encrypts or decrypts input with alg in cipher block chaining mode.
// The key must be alg.KeySize() bytes, the IV alg.BlockSize() bytes and the
// input a multiple of alg.BlockSize(); padding is the caller's job. The
// returned slice has the same length as input and the IV is not modified.
func CBC(alg Algorithm, dir Direction, input, key, iv []byte) ([]byte, error) {
	if !alg.Available() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	op := alg.String()
	if err := checkSize(op, "key", len(key), alg.KeySize()); err != nil {
		return nil, err
	}
	if err := checkSize(op, "iv", len(iv), alg.BlockSize()); err != nil {
		return nil, err
	}
	if err := checkMultiple(op, "input", len(input), alg.BlockSize()); err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return []byte{}, nil
	}
	b, err := alg.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cbcCrypt(b, dir, input, iv), nil
}

// DESCBC is CBC with DES.
func DESCBC(dir Direction, input, key, iv []byte) ([]byte, error) {
	return CBC(DES, dir, input, key, iv)
}

// AES128CBC is CBC with AES-128.
func AES128CBC(dir Direction, input, key, iv []byte) ([]byte, error) {
	return CBC(AES128, dir, input, key, iv)
}

// SM4CBC is CBC with SM4.
func SM4CBC(dir Direction, input, key, iv []byte) ([]byte, error) {
	return CBC(SM4, dir, input, key, iv)
}

// cbcCrypt chains b over input. Sizes have already been checked.
func cbcCrypt(b cipher.Block, dir Direction, input, iv []byte) []byte {
	bs := b.BlockSize()
	out := make([]byte, len(input))
	chain := make([]byte, bs)
	copy(chain, iv)

	for off := 0; off < len(input); off += bs {
		src := input[off : off+bs]
		dst := out[off : off+bs]
		if dir == Encrypt {
			xorBytes(dst, src, chain)
			b.Encrypt(dst, dst)
			copy(chain, dst)
		} else {
			b.Decrypt(dst, src)
			xorBytes(dst, dst, chain)
			copy(chain, src)
		}
	}
	return out
}
