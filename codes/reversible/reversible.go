package reversible

import (
	"fmt"

	"github.com/nathanhack/cardcodes/codes"
	"github.com/nathanhack/cardcodes/codes/hamming"
	"github.com/nathanhack/cardcodes/codes/internal"
	"github.com/nathanhack/cardcodes/codes/optimize"
	"github.com/sirupsen/logrus"
)

// MinimumDistance is the distance every reversible code set must reach (single bit correction).
const MinimumDistance = 3

// fixup is applied on top of the alternating mask, found by trial and error
const fixup = 0b111

// Mask is the XOR applied to every reversible code of codeBits bits.
func Mask(codeBits int) uint64 {
	return internal.AlternatingMask(codeBits) ^ fixup
}

// Code duplicates the data bits into the high and low halves around a
// central parity bit, then applies Mask.
func Code(i uint64, dataBits int) uint64 {
	codeBits := 2*dataBits + 1
	return (i<<uint(dataBits+1) | i<<1 | internal.Parity(i)) ^ Mask(codeBits)
}

// New creates 2^dataBits codes of 2*dataBits+1 bits whose bit reversals are
// never another code (or themselves) so the reading direction can be detected.
func New(dataBits int, shuffle bool) (*codes.CodeDefinition, error) {
	if dataBits < 5 {
		return nil, fmt.Errorf("%w: must have at least 5 bits of data", codes.ErrInvalidParameters)
	}
	if dataBits > 31 {
		return nil, fmt.Errorf("%w: data bits (%v) must be <=31", codes.ErrInvalidParameters, dataBits)
	}
	if dataBits > 16 {
		logrus.Warnf("Creating %v codes, verification will take a while", uint64(1)<<uint(dataBits))
	}
	codeBits := 2*dataBits + 1

	result := make([]uint64, 1<<uint(dataBits))
	for i := range result {
		result[i] = Code(uint64(i), dataBits)
	}

	for i, c := range result {
		if c == internal.ReverseBits(c, codeBits) {
			return nil, fmt.Errorf("%w: code %v (%0*b) is its own reversal", codes.ErrSelfCheckFailed, i, codeBits, c)
		}
	}

	d, ok := hamming.MinimumDistance(result, codeBits, MinimumDistance-1, true)
	if !ok {
		return nil, fmt.Errorf("%w: reversible minimum distance %v is less than %v", codes.ErrSelfCheckFailed, d, MinimumDistance)
	}
	logrus.Debugf("Reversible minimum distance %v", d)

	if shuffle {
		result = optimize.Shuffle(result)
	}

	return &codes.CodeDefinition{
		Algorithm:   codes.Reversible,
		Codes:       result,
		CodeBits:    codeBits,
		DataBits:    dataBits,
		MinDistance: d,
		Reversible:  true,
	}, nil
}
