package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"os"

	"github.com/jiegec/crypto"
)

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read random bytes: %v\n", err)
		os.Exit(1)
	}
	return b
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func main() {
	fmt.Println("=== Classical Crypto Demo (Go Client) ===")
	failed := false

	// Step 1: CBC round trip with fresh keys
	fmt.Println("\n--- Step 1: CBC Round Trip ---")
	plaintext := []byte("Hello from Go Client!")
	for _, alg := range crypto.Algorithms() {
		key := randomBytes(alg.KeySize())
		iv := randomBytes(alg.BlockSize())

		ciphertext, err := crypto.CBC(alg, crypto.Encrypt, crypto.PKCS7Pad(plaintext, alg.BlockSize()), key, iv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encrypt: %v\n", err)
			os.Exit(1)
		}
		padded, err := crypto.CBC(alg, crypto.Decrypt, ciphertext, key, iv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to decrypt: %v\n", err)
			os.Exit(1)
		}
		decrypted, err := crypto.PKCS7Unpad(padded, alg.BlockSize())
		ok := err == nil && bytes.Equal(decrypted, plaintext)
		failed = failed || !ok

		fmt.Printf("[%s]: %s\n", alg, passFail(ok))
		fmt.Printf("  Key: %s\n", crypto.BytesToHex(key))
		fmt.Printf("  IV: %s\n", crypto.BytesToHex(iv))
		fmt.Printf("  Ciphertext: %s\n", crypto.BytesToHex(ciphertext))
	}

	// Step 2: RC4 is its own inverse
	fmt.Println("\n--- Step 2: RC4 ---")
	rc4Key := randomBytes(16)
	ct, err := crypto.RC4(plaintext, rc4Key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encrypt: %v\n", err)
		os.Exit(1)
	}
	pt, _ := crypto.RC4(ct, rc4Key)
	ok := bytes.Equal(pt, plaintext)
	failed = failed || !ok
	fmt.Printf("[rc4]: %s\n", passFail(ok))
	fmt.Printf("  Ciphertext: %s\n", crypto.BytesToHex(ct))

	// Step 3: digests
	fmt.Println("\n--- Step 3: Digests ---")
	for _, h := range crypto.Hashes() {
		fmt.Printf("%-9s %s\n", h, crypto.BytesToHex(h.Sum(plaintext)))
	}

	// Step 4: recover the LFSR behind the first 32 output bits of RC4
	fmt.Println("\n--- Step 4: Berlekamp-Massey ---")
	var seq []byte
	for _, b := range ct[:4] {
		for i := 7; i >= 0; i-- {
			seq = append(seq, '0'+(b>>uint(i))&1)
		}
	}
	lfsr, err := crypto.BerlekampMassey(seq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run Berlekamp-Massey: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sequence: %s\n", seq)
	fmt.Printf("Connection polynomial: %v\n", lfsr.Poly)
	fmt.Printf("Linear complexity: %d\n", lfsr.Complexity)

	if failed {
		fmt.Fprintln(os.Stderr, "\nRound trip test FAILED!")
		os.Exit(1)
	}
	fmt.Println("\n=== Demo Complete ===")
}
