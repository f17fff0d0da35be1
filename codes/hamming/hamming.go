package hamming

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/nathanhack/cardcodes/codes/internal"
	"gonum.org/v1/gonum/mat"
)

// Distance is the number of differing bits between a and b.
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// Reverse is value read from the other end, the low codeBits bits reversed.
func Reverse(value uint64, codeBits int) uint64 {
	return internal.ReverseBits(value, codeBits)
}

func pairDistance(a, b uint64, codeBits int, reversible bool) int {
	d := Distance(a, b)
	if reversible {
		if r := Distance(a, internal.ReverseBits(b, codeBits)); r < d {
			d = r
		}
	}
	return d
}

// MinimumDistance returns the smallest pairwise Hamming distance of codes.
// When reversible is set each pair is also compared against the bit reversal
// of the second code and the worse of the two orientations counts.
//
// As soon as a pair is found with a distance <= bestKnown the scan stops and
// (thatDistance, false) is returned, meaning codes can not beat bestKnown.
// Otherwise (minimum, true) is returned. With fewer than two codes there are
// no pairs and codeBits is reported.
func MinimumDistance(codes []uint64, codeBits, bestKnown int, reversible bool) (int, bool) {
	if len(codes) < 2 {
		return codeBits, true
	}

	min := codeBits + 1
	for i := 0; i < len(codes); i++ {
		for j := i + 1; j < len(codes); j++ {
			d := pairDistance(codes[i], codes[j], codeBits, reversible)
			if d <= bestKnown {
				return d, false
			}
			if d < min {
				min = d
			}
		}
	}
	return min, true
}

// Histogram returns width+1 slots where slot k counts the codes with exactly k
// bits set. Bits above width are ignored.
func Histogram(codes []uint64, width int) []int {
	hist := make([]int, width+1)
	mask := internal.BitMask(width)
	for _, c := range codes {
		hist[bits.OnesCount64(c&mask)]++
	}
	return hist
}

// FoldedHistogram sums slot k with slot width-k for k in [0, width/2].
func FoldedHistogram(hist []int, width int) []int {
	folded := make([]int, width/2+1)
	for k := range folded {
		folded[k] = hist[k]
		if width-k != k {
			folded[k] += hist[width-k]
		}
	}
	return folded
}

// FoldedKey renders the folded histogram as zero padded slots, each as wide
// as the decimal form of count, concatenated left to right. Smaller keys
// (compared as strings) are better balanced.
func FoldedKey(hist []int, width, count int) string {
	pad := len(fmt.Sprint(count))
	buf := strings.Builder{}
	for _, v := range FoldedHistogram(hist, width) {
		buf.WriteString(fmt.Sprintf("%0*d", pad, v))
	}
	return buf.String()
}

// DistanceMap is the count x count matrix of pairwise distances using the
// same orientation rule as MinimumDistance.
func DistanceMap(codes []uint64, codeBits int, reversible bool) *mat.Dense {
	n := len(codes)
	if n == 0 {
		return nil
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := float64(pairDistance(codes[i], codes[j], codeBits, reversible))
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}
	return m
}

// DistanceCounts tallies every pairwise distance, slot d counting the pairs at distance d.
func DistanceCounts(codes []uint64, codeBits int, reversible bool) []int {
	counts := make([]int, codeBits+1)
	mask := internal.BitMask(codeBits)
	for i := 0; i < len(codes); i++ {
		for j := i + 1; j < len(codes); j++ {
			counts[pairDistance(codes[i]&mask, codes[j]&mask, codeBits, reversible)]++
		}
	}
	return counts
}
