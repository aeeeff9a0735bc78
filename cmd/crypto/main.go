// Command crypto encrypts, decrypts, hashes or runs Berlekamp-Massey over a
// file or stdin.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jiegec/crypto"
)

type mode int

const (
	modeNone mode = iota
	modeEncrypt
	modeDecrypt
	modeDigest
	modeLFSR
)

func (m mode) String() string {
	switch m {
	case modeEncrypt:
		return "encrypt"
	case modeDecrypt:
		return "decrypt"
	case modeDigest:
		return "digest"
	case modeLFSR:
		return "lfsr"
	}
	return "none"
}

var errUsage = errors.New("usage")

type options struct {
	mode    mode
	algo    string
	key     []byte
	iv      []byte
	verbose bool
	input   string
	output  string
}

func algoNames() string {
	var names []string
	for _, a := range crypto.Algorithms() {
		names = append(names, a.String())
	}
	names = append(names, "rc4", "bm")
	for _, h := range crypto.Hashes() {
		names = append(names, h.String())
	}
	return strings.Join(names, ", ")
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("crypto", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: crypto OPTIONS INPUT OUTPUT\n")
		fmt.Fprintf(stderr, "       OPTIONS:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "       INPUT: path to input file or - for stdin\n")
		fmt.Fprintf(stderr, "       OUTPUT: path to output file or - for stdout\n")
	}

	var (
		encrypt = fs.Bool("e", false, "encrypt")
		decrypt = fs.Bool("d", false, "decrypt")
		digest  = fs.Bool("D", false, "digest")
		lfsr    = fs.Bool("l", false, "lfsr")
		algo    = fs.String("a", "", "use `algo` (one of: "+algoNames()+")")
		key     = fs.String("k", "", "key in hex")
		iv      = fs.String("i", "", "iv in hex (all 0 when omitted)")
		opts    = &options{}
	)
	fs.BoolVar(&opts.verbose, "v", false, "verbose")
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	for _, m := range []struct {
		set bool
		m   mode
	}{{*encrypt, modeEncrypt}, {*decrypt, modeDecrypt}, {*digest, modeDigest}, {*lfsr, modeLFSR}} {
		if !m.set {
			continue
		}
		if opts.mode != modeNone {
			fmt.Fprintln(stderr, "Only one of -d, -e, -D, -l may be given")
			fs.Usage()
			return nil, errUsage
		}
		opts.mode = m.m
	}
	if opts.mode == modeNone {
		fmt.Fprintln(stderr, "No mode specified (one of -d, -e, -D, -l)")
		fs.Usage()
		return nil, errUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "Wrong number of arguments")
		fs.Usage()
		return nil, errUsage
	}
	opts.input, opts.output = fs.Arg(0), fs.Arg(1)
	opts.algo = strings.ToLower(*algo)

	var err error
	if opts.key, err = crypto.ParseHex(*key); err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	if opts.iv, err = crypto.ParseHex(*iv); err != nil {
		return nil, fmt.Errorf("invalid iv: %w", err)
	}
	return opts, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read file: %w", err)
	}
	return data, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write file: %w", err)
	}
	return nil
}

func blockCipher(opts *options, logger *log.Logger, data []byte) ([]byte, error) {
	if opts.algo == "rc4" {
		return crypto.RC4(data, opts.key)
	}
	alg, err := crypto.ParseAlgorithm(opts.algo)
	if err != nil {
		return nil, err
	}
	iv := opts.iv
	if len(iv) == 0 {
		iv = make([]byte, alg.BlockSize())
	}

	if opts.mode == modeEncrypt {
		padded := crypto.PKCS7Pad(data, alg.BlockSize())
		if opts.verbose {
			logger.Printf("padded %d bytes to %d", len(data), len(padded))
		}
		return crypto.CBC(alg, crypto.Encrypt, padded, opts.key, iv)
	}
	out, err := crypto.CBC(alg, crypto.Decrypt, data, opts.key, iv)
	if err != nil {
		return nil, err
	}
	return crypto.PKCS7Unpad(out, alg.BlockSize())
}

func runLFSR(opts *options, logger *log.Logger, data []byte) ([]byte, error) {
	if opts.algo != "" && opts.algo != "bm" {
		return nil, fmt.Errorf("%w: %q for -l", crypto.ErrUnknownAlgorithm, opts.algo)
	}
	l, err := crypto.BerlekampMassey(bytes.TrimSpace(data))
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		for i, s := range l.Steps {
			logger.Printf("f_%d: %v l_%d: %d", i, s.Poly, i, s.Complexity)
		}
	}
	return l.Poly.Bits(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "crypto: ", 0)
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts.verbose {
		logger.Printf("algo: %s", opts.algo)
		logger.Printf("iv: %s", crypto.BytesToHex(opts.iv))
		logger.Printf("key: %s", crypto.BytesToHex(opts.key))
		logger.Printf("mode: %v", opts.mode)
	}

	data, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	var out []byte
	switch opts.mode {
	case modeEncrypt, modeDecrypt:
		out, err = blockCipher(opts, logger, data)
	case modeDigest:
		var h crypto.Hash
		if h, err = crypto.ParseHash(opts.algo); err == nil {
			out = h.Sum(data)
		}
	case modeLFSR:
		out, err = runLFSR(opts, logger, data)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", opts.mode, opts.algo, err)
	}
	return writeOutput(opts.output, stdout, out)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("crypto: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			log.Print(err)
		}
		os.Exit(1)
	}
}
