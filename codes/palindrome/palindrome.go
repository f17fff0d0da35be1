package palindrome

import (
	"fmt"

	"github.com/nathanhack/cardcodes/codes"
	"github.com/nathanhack/cardcodes/codes/hamming"
	"github.com/nathanhack/cardcodes/codes/internal"
	"github.com/nathanhack/cardcodes/codes/optimize"
	"github.com/sirupsen/logrus"
)

// Code builds the (dataBits+1) bit value (i<<1 | parity) XOR the alternating
// mask and mirrors it into the low half to form a 2*dataBits+1 bit palindrome.
func Code(i uint64, dataBits int) uint64 {
	v := (i<<1 | internal.Parity(i)) ^ internal.AlternatingMask(dataBits+1)
	return v<<uint(dataBits) | internal.ReverseBits(v, dataBits+1)
}

// New creates 2^dataBits codes that read the same in both directions.
// Palindromes can't tell which way a card was read, see reversible for that.
func New(dataBits int, shuffle bool) (*codes.CodeDefinition, error) {
	if dataBits < 1 || dataBits > 31 {
		return nil, fmt.Errorf("%w: data bits (%v) must be in [1,31]", codes.ErrInvalidParameters, dataBits)
	}
	codeBits := 2*dataBits + 1

	result := make([]uint64, 1<<uint(dataBits))
	for i := range result {
		c := Code(uint64(i), dataBits)
		if c != internal.ReverseBits(c, codeBits) {
			return nil, fmt.Errorf("%w: code %v (%0*b) is not a palindrome", codes.ErrSelfCheckFailed, i, codeBits, c)
		}
		result[i] = c
	}

	d, ok := hamming.MinimumDistance(result, codeBits, 0, false)
	if !ok {
		return nil, fmt.Errorf("%w: duplicate palindrome codes", codes.ErrSelfCheckFailed)
	}
	logrus.Debugf("Palindrome minimum distance %v", d)

	if shuffle {
		result = optimize.Shuffle(result)
	}

	return &codes.CodeDefinition{
		Algorithm:   codes.Palindrome,
		Codes:       result,
		CodeBits:    codeBits,
		DataBits:    dataBits,
		MinDistance: d,
	}, nil
}
