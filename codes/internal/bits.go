package internal

import "math/bits"

// BitMask returns a value with the low count bits set.
func BitMask(count int) uint64 {
	if count >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(count) - 1
}

// ReverseBits reverses the low count bits of value, dropping everything above them.
func ReverseBits(value uint64, count int) uint64 {
	if count <= 0 {
		return 0
	}
	return bits.Reverse64(value) >> uint(64-count)
}

// Parity is the popcount of the low 32 bits mod 2. Callers must make sure value fits.
func Parity(value uint64) uint64 {
	return uint64(bits.OnesCount32(uint32(value)) & 1)
}

// AlternatingMask returns the 0101... pattern of count bits, read MSB first,
// so the most significant bit is always 0.
func AlternatingMask(count int) uint64 {
	mask := uint64(0)
	for i := 0; i < count; i++ {
		mask = mask<<1 | uint64(i&1)
	}
	return mask
}
