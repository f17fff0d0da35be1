package benchmarking

import (
	"math/rand"

	"github.com/nathanhack/cardcodes/codes/hamming"
)

// RandomCard picks a card index in [0, count).
func RandomCard(count int) int {
	return rand.Intn(count)
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip, codeBits) distinct bits of code.
func RandomFlipBitCount(code uint64, codeBits, numberOfBitsToFlip int) uint64 {
	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < codeBits {
		flip[rand.Intn(codeBits)] = true
	}

	for i := range flip {
		code ^= 1 << uint(i)
	}
	return code
}

// RandomReverse returns the bit reversal of code with the given probability,
// simulating a card read from the other end.
func RandomReverse(code uint64, codeBits int, probability float64) uint64 {
	if probability > 0 && rand.Float64() < probability {
		return hamming.Reverse(code, codeBits)
	}
	return code
}
