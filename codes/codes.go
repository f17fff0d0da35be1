package codes

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathanhack/cardcodes/codes/hamming"
	"github.com/nathanhack/cardcodes/codes/internal"
)

type Algorithm string

const (
	Matrix     Algorithm = "matrix"
	Reversible Algorithm = "reversible"
	Palindrome Algorithm = "palindrome"
)

//CodeDefinition is the published code set along with how it was made.
// The order of Codes is stable once published, index i is card i.
type CodeDefinition struct {
	Algorithm   Algorithm
	Codes       []uint64
	CodeBits    int
	DataBits    int
	MinDistance int
	Reversible  bool

	Polynomial uint64  `json:",omitempty"` // matrix only
	Matrix     []uint8 `json:",omitempty"` // matrix only, DataBits x CodeBits row major
	Mask       uint64  `json:",omitempty"` // binary distribution mask, 0 when not optimized
}

func (c *CodeDefinition) Len() int {
	return len(c.Codes)
}

//CorrectableBits is the number of bit errors a nearest code decoder can fix.
func (c *CodeDefinition) CorrectableBits() int {
	if c.MinDistance < 1 {
		return 0
	}
	return (c.MinDistance - 1) / 2
}

//Redundancy is the percentage of the code bits not carrying data.
func (c *CodeDefinition) Redundancy() float64 {
	if c.CodeBits == 0 {
		return 0
	}
	return 100 * float64(c.CodeBits-c.DataBits) / float64(c.CodeBits)
}

func (c *CodeDefinition) CodeRate() float64 {
	if c.CodeBits == 0 {
		return 0
	}
	return float64(c.DataBits) / float64(c.CodeBits)
}

//Nearest decodes a read value using the error budget of the code set.
func (c *CodeDefinition) Nearest(value uint64) hamming.Match {
	return hamming.Nearest(c.Codes, c.CodeBits, value, c.CorrectableBits(), c.Reversible)
}

//Validate checks the code set still satisfies what it claims: distinct codes,
// a minimum distance of at least MinDistance, palindromes for the palindrome
// algorithm and a full rank generator matrix for the matrix algorithm.
func (c *CodeDefinition) Validate() error {
	if c.CodeBits <= 0 || c.CodeBits > 64 {
		return fmt.Errorf("%w: code bits (%v) must be in [1,64]", ErrInvalidParameters, c.CodeBits)
	}

	seen := make(map[uint64]int, len(c.Codes))
	for i, code := range c.Codes {
		if code&^internal.BitMask(c.CodeBits) != 0 {
			return fmt.Errorf("%w: code %v (%b) is wider than %v bits", ErrSelfCheckFailed, i, code, c.CodeBits)
		}
		if j, has := seen[code]; has {
			return fmt.Errorf("%w: codes %v and %v are identical", ErrSelfCheckFailed, j, i)
		}
		seen[code] = i
	}

	d, _ := hamming.MinimumDistance(c.Codes, c.CodeBits, 0, c.Reversible)
	if d < c.MinDistance {
		return fmt.Errorf("%w: minimum distance %v is less than %v", ErrSelfCheckFailed, d, c.MinDistance)
	}

	if c.DataBits < 1 || c.DataBits > 31 || c.Len() != 1<<uint(c.DataBits) {
		return fmt.Errorf("%w: %v codes for %v data bits", ErrInvalidParameters, c.Len(), c.DataBits)
	}

	switch c.Algorithm {
	case Palindrome, Reversible:
		if c.CodeBits != 2*c.DataBits+1 {
			return fmt.Errorf("%w: %v codes must have %v code bits for %v data bits but found %v", ErrInvalidParameters, c.Algorithm, 2*c.DataBits+1, c.DataBits, c.CodeBits)
		}
	}

	switch c.Algorithm {
	case Palindrome:
		for i, code := range c.Codes {
			if code != internal.ReverseBits(code, c.CodeBits) {
				return fmt.Errorf("%w: code %v (%0*b) is not a palindrome", ErrSelfCheckFailed, i, c.CodeBits, code)
			}
		}
	case Reversible:
		for i, code := range c.Codes {
			if code == internal.ReverseBits(code, c.CodeBits) {
				return fmt.Errorf("%w: code %v (%0*b) equals its own reversal", ErrSelfCheckFailed, i, c.CodeBits, code)
			}
		}
	case Matrix:
		if len(c.Matrix) != c.DataBits*c.CodeBits {
			return fmt.Errorf("%w: matrix has %v entries expected %v", ErrSelfCheckFailed, len(c.Matrix), c.DataBits*c.CodeBits)
		}
		if rank := internal.MatrixRank(context.Background(), c.Matrix, c.DataBits, 0); rank != c.DataBits {
			return fmt.Errorf("%w: matrix rank %v expected %v", ErrSelfCheckFailed, rank, c.DataBits)
		}
	}
	return nil
}

//GoLiteral renders the codes as a Go variable for embedding in the decoder and printer.
func (c *CodeDefinition) GoLiteral(name string) string {
	digits := (c.CodeBits + 3) / 4
	buf := strings.Builder{}
	buf.WriteString(fmt.Sprintf("// %v codes, %v bits, minimum distance %v\n", c.Algorithm, c.CodeBits, c.MinDistance))
	buf.WriteString(fmt.Sprintf("var %v = [%v]uint64{", name, len(c.Codes)))
	for i, code := range c.Codes {
		if i%8 == 0 {
			buf.WriteString("\n\t")
		} else {
			buf.WriteString(" ")
		}
		buf.WriteString(fmt.Sprintf("0x%0*X,", digits, code))
	}
	buf.WriteString("\n}\n")
	return buf.String()
}

func (c *CodeDefinition) String() string {
	buf := strings.Builder{}
	buf.WriteString(fmt.Sprintf("Algorithm: %v\n", c.Algorithm))
	buf.WriteString(fmt.Sprintf("Codes: %v\n", len(c.Codes)))
	buf.WriteString(fmt.Sprintf("Code Bits: %v  Data Bits: %v\n", c.CodeBits, c.DataBits))
	buf.WriteString(fmt.Sprintf("Minimum Distance: %v  Correctable Bits: %v\n", c.MinDistance, c.CorrectableBits()))
	buf.WriteString(fmt.Sprintf("Redundancy: %0.2f%%  Code Rate: %0.2f\n", c.Redundancy(), c.CodeRate()))
	buf.WriteString(fmt.Sprintf("Reversible: %v\n", c.Reversible))
	if c.Algorithm == Matrix {
		buf.WriteString(fmt.Sprintf("Polynomial: %b\n", c.Polynomial))
		buf.WriteString("Matrix:\n")
		for r := 0; r < c.DataBits && len(c.Matrix) == c.DataBits*c.CodeBits; r++ {
			buf.WriteString(fmt.Sprintf("  %0*b\n", c.CodeBits, internal.MatrixRow(c.Matrix, c.DataBits, r)))
		}
	}
	if c.Mask != 0 {
		buf.WriteString(fmt.Sprintf("Mask: %0*b\n", c.CodeBits, c.Mask))
	}
	return buf.String()
}
