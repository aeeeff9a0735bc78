package crypto

// RC4 XORs input with the RC4 keystream for key. The same call encrypts
// and decrypts. The key must be 1 to 256 bytes long.
func RC4(input, key []byte) ([]byte, error) {
	if len(key) < 1 || len(key) > 256 {
		return nil, &SizeError{Op: "rc4", Field: "key", Got: len(key), Min: 1, Want: 256}
	}

	// key scheduling
	var s [256]byte
	for i := range s {
		s[i] = byte(i)
	}
	var j byte
	for i := 0; i < 256; i++ {
		j += s[i] + key[i%len(key)]
		s[i], s[j] = s[j], s[i]
	}

	// keystream
	out := make([]byte, len(input))
	var i byte
	j = 0
	for k, b := range input {
		i++
		j += s[i]
		s[i], s[j] = s[j], s[i]
		out[k] = b ^ s[s[i]+s[j]]
	}
	return out, nil
}
