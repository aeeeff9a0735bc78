package crypto

import (
	"crypto/cipher"
	"fmt"
	"strings"
)

// Algorithm identifies a block cipher.
type Algorithm int

const (
	DES Algorithm = iota + 1
	AES128
	SM4
)

var algorithms = map[Algorithm]struct {
	name      string
	blockSize int
	keySize   int
	newCipher func(key []byte) (cipher.Block, error)
}{
	DES:    {"des", desBlockSize, desKeySize, NewDES},
	AES128: {"aes128", aesBlockSize, aes128KeySize, NewAES128},
	SM4:    {"sm4", sm4BlockSize, sm4KeySize, NewSM4},
}

// Algorithms lists every supported block cipher.
func Algorithms() []Algorithm { return []Algorithm{DES, AES128, SM4} }

// ParseAlgorithm maps a name such as "aes128" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(name)
	for _, a := range Algorithms() {
		if algorithms[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Available reports whether a names a supported cipher.
func (a Algorithm) Available() bool {
	_, ok := algorithms[a]
	return ok
}

func (a Algorithm) String() string {
	if info, ok := algorithms[a]; ok {
		return info.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// BlockSize returns the block (and IV) size in bytes.
func (a Algorithm) BlockSize() int { return algorithms[a].blockSize }

// KeySize returns the key size in bytes.
func (a Algorithm) KeySize() int { return algorithms[a].keySize }

// NewCipher builds the block cipher for key.
func (a Algorithm) NewCipher(key []byte) (cipher.Block, error) {
	info, ok := algorithms[a]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
	return info.newCipher(key)
}
