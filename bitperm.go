package crypto

import "fmt"

// bitPermutation selects bits of an inWidth-bit word. Table entries are
// 1-indexed from the most significant bit of the input, the numbering used
// by FIPS 46-3; output bit 1 is the most significant bit of the result.
type bitPermutation struct {
	name    string
	inWidth int
	table   []uint8
}

// outWidth is the width of the permuted word.
func (p bitPermutation) outWidth() int { return len(p.table) }

func (p bitPermutation) apply(src uint64) uint64 {
	var out uint64
	for _, pos := range p.table {
		out = out<<1 | (src>>uint(p.inWidth-int(pos)))&1
	}
	return out
}

// validate checks that every table entry addresses a bit of the input word
// and that the result fits a uint64.
func (p bitPermutation) validate() error {
	if p.inWidth < 1 || p.inWidth > 64 {
		return fmt.Errorf("%s: input width %d out of range", p.name, p.inWidth)
	}
	if p.outWidth() < 1 || p.outWidth() > 64 {
		return fmt.Errorf("%s: output width %d out of range", p.name, p.outWidth())
	}
	for i, pos := range p.table {
		if pos < 1 || int(pos) > p.inWidth {
			return fmt.Errorf("%s: entry %d selects bit %d of a %d-bit word", p.name, i, pos, p.inWidth)
		}
	}
	return nil
}
