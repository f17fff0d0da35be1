package hamming

import "github.com/nathanhack/cardcodes/codes/internal"

// Match is the result of a nearest code lookup.
type Match struct {
	Index    int  // index into the code set, -1 when nothing was compared
	Distance int  // bits that had to be corrected
	Reversed bool // the read matched the bit reversal of the code
	OK       bool // within the error budget and not ambiguous
}

// Nearest finds the code closest to value. For reversible sets the bit
// reversal of every code is also considered. The match is only OK when its
// distance is <= maxErrors and no other code is equally close.
func Nearest(codes []uint64, codeBits int, value uint64, maxErrors int, reversible bool) Match {
	best := Match{Index: -1, Distance: codeBits + 1}
	ambiguous := false

	consider := func(index, d int, reversed bool) {
		switch {
		case d < best.Distance:
			best = Match{Index: index, Distance: d, Reversed: reversed}
			ambiguous = false
		case d == best.Distance && index != best.Index:
			ambiguous = true
		}
	}

	for i, c := range codes {
		consider(i, Distance(value, c), false)
		if reversible {
			consider(i, Distance(value, internal.ReverseBits(c, codeBits)), true)
		}
	}

	best.OK = best.Index >= 0 && !ambiguous && best.Distance <= maxErrors
	return best
}
