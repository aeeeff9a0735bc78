package crypto

import "fmt"

// PKCS7Pad returns a copy of input padded to a multiple of blockSize. A full
// block of padding is added when input is already aligned.
func PKCS7Pad(input []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("crypto: invalid padding block size %d", blockSize))
	}
	padLen := blockSize - len(input)%blockSize
	out := make([]byte, len(input)+padLen)
	copy(out, input)
	for i := len(input); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// PKCS7Unpad strips PKCS#7 padding. The result aliases input.
func PKCS7Unpad(input []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("crypto: invalid padding block size %d", blockSize))
	}
	if len(input) == 0 || len(input)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidPadding, len(input))
	}
	padLen := int(input[len(input)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: pad byte %#02x", ErrInvalidPadding, padLen)
	}
	for _, b := range input[len(input)-padLen:] {
		if int(b) != padLen {
			return nil, ErrInvalidPadding
		}
	}
	return input[:len(input)-padLen], nil
}
