package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// Polynomial is a polynomial over GF(2); p[i] is the coefficient of x^i.
type Polynomial []uint8

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

func (p Polynomial) trim() Polynomial { return p[:p.Degree()+1] }

// String formats p as "1 + x + x^3".
func (p Polynomial) String() string {
	var terms []string
	for i, c := range p {
		if c == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Bits returns the coefficients as ASCII '0'/'1', constant term first,
// without trailing zeros.
func (p Polynomial) Bits() []byte {
	p = p.trim()
	out := make([]byte, len(p))
	for i, c := range p {
		out[i] = '0' + c
	}
	return out
}

// LFSRStep is the state after processing a prefix of the sequence.
type LFSRStep struct {
	Poly       Polynomial
	Complexity int
}

// LFSR is the shortest linear feedback shift register generating a sequence.
// Poly is the connection polynomial 1 + c1 x + ... + cL x^L, so that
// s[n] = c1 s[n-1] + ... + cL s[n-L] for every n >= L.
type LFSR struct {
	Poly       Polynomial
	Complexity int
	// Steps[n] holds f_n and l_n for the first n bits; Steps[len(seq)] is
	// the final result.
	Steps []LFSRStep
}

// BerlekampMassey finds the shortest LFSR generating seq, given as ASCII
// '0' and '1' bytes.
func BerlekampMassey(seq []byte) (*LFSR, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	s := make([]uint8, len(seq))
	for i, c := range seq {
		switch c {
		case '0':
		case '1':
			s[i] = 1
		default:
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrInvalidSequence, c, i)
		}
	}

	f := []Polynomial{{1}}
	l := []int{0}
	for n := 0; n < len(s); n++ {
		// discrepancy
		var d uint8
		for j := 0; j <= l[n] && j < len(f[n]); j++ {
			d ^= f[n][j] & s[n-j]
		}

		switch {
		case d == 0:
			f = append(f, f[n])
			l = append(l, l[n])
		case l[n] == 0:
			// first non-zero bit: f = 1 + x^(n+1)
			next := make(Polynomial, n+2)
			next[0], next[n+1] = 1, 1
			f = append(f, next)
			l = append(l, n+1)
		default:
			// m is the last step where the length grew: l_m < l_m+1 = ... = l_n
			m := n - 1
			for l[m] >= l[m+1] {
				m--
			}
			next := make(Polynomial, max(len(f[n]), n-m+len(f[m])))
			copy(next, f[n])
			for j, c := range f[m] {
				next[n-m+j] ^= c
			}
			f = append(f, next.trim())
			l = append(l, max(l[n], n+1-l[n]))
		}
	}

	steps := make([]LFSRStep, len(f))
	for i := range f {
		steps[i] = LFSRStep{Poly: f[i], Complexity: l[i]}
	}
	last := steps[len(steps)-1]
	return &LFSR{Poly: last.Poly, Complexity: last.Complexity, Steps: steps}, nil
}
