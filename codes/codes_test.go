package codes

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/nathanhack/cardcodes/codes/internal"
	"github.com/stretchr/testify/require"
)

func scenarioDefinition() *CodeDefinition {
	return &CodeDefinition{
		Algorithm:   Matrix,
		Codes:       []uint64{21, 2, 59, 44, 9, 30, 39, 48},
		CodeBits:    6,
		DataBits:    3,
		MinDistance: 3,
		Polynomial:  0b10111,
		Matrix:      internal.GenerateMdsMatrix(6, 3, 0b10111),
	}
}

func TestCodeDefinitionStats(t *testing.T) {
	tests := []struct {
		def         CodeDefinition
		correctable int
		redundancy  float64
		rate        float64
	}{
		{CodeDefinition{CodeBits: 6, DataBits: 3, MinDistance: 3}, 1, 50, 0.5},
		{CodeDefinition{CodeBits: 11, DataBits: 5, MinDistance: 3}, 1, 600.0 / 11, 5.0 / 11},
		{CodeDefinition{CodeBits: 9, DataBits: 3, MinDistance: 4}, 1, 600.0 / 9, 1.0 / 3},
		{CodeDefinition{CodeBits: 10, DataBits: 2, MinDistance: 5}, 2, 80, 0.2},
		{CodeDefinition{CodeBits: 4, DataBits: 3, MinDistance: 1}, 0, 25, 0.75},
		{CodeDefinition{}, 0, 0, 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, test.correctable, test.def.CorrectableBits())
			require.InDelta(t, test.redundancy, test.def.Redundancy(), 1e-9)
			require.InDelta(t, test.rate, test.def.CodeRate(), 1e-9)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, scenarioDefinition().Validate())

	duplicate := scenarioDefinition()
	duplicate.Codes[1] = duplicate.Codes[0]
	require.True(t, errors.Is(duplicate.Validate(), ErrSelfCheckFailed))

	tooClose := scenarioDefinition()
	tooClose.MinDistance = 4
	require.True(t, errors.Is(tooClose.Validate(), ErrSelfCheckFailed))

	wide := scenarioDefinition()
	wide.Codes[0] = 1 << 6
	require.True(t, errors.Is(wide.Validate(), ErrSelfCheckFailed))

	lowRank := scenarioDefinition()
	lowRank.Matrix = internal.GenerateMdsMatrix(6, 3, 0)
	require.True(t, errors.Is(lowRank.Validate(), ErrSelfCheckFailed))

	notPalindrome := &CodeDefinition{Algorithm: Palindrome, Codes: []uint64{0b010, 0b100}, CodeBits: 3, DataBits: 1, MinDistance: 2}
	require.True(t, errors.Is(notPalindrome.Validate(), ErrSelfCheckFailed))

	palindrome := &CodeDefinition{Algorithm: Palindrome, Codes: []uint64{0b010, 0b101}, CodeBits: 3, DataBits: 1, MinDistance: 3}
	require.NoError(t, palindrome.Validate())

	selfReversed := &CodeDefinition{Algorithm: Reversible, Codes: []uint64{0b011, 0b101}, CodeBits: 3, DataBits: 1, Reversible: true}
	require.True(t, errors.Is(selfReversed.Validate(), ErrSelfCheckFailed))

	require.True(t, errors.Is((&CodeDefinition{CodeBits: 0}).Validate(), ErrInvalidParameters))

	missing := scenarioDefinition()
	missing.Codes = missing.Codes[:7]
	require.True(t, errors.Is(missing.Validate(), ErrInvalidParameters))

	wrongWidth := &CodeDefinition{Algorithm: Palindrome, Codes: []uint64{0b0110, 0b1001}, CodeBits: 4, DataBits: 1, MinDistance: 4}
	require.True(t, errors.Is(wrongWidth.Validate(), ErrInvalidParameters))

	wrongCount := &CodeDefinition{Algorithm: Reversible, Codes: []uint64{0b001, 0b100, 0b110}, CodeBits: 3, DataBits: 1, Reversible: true}
	require.True(t, errors.Is(wrongCount.Validate(), ErrInvalidParameters))
}

func TestNearest(t *testing.T) {
	def := scenarioDefinition()
	for i, c := range def.Codes {
		for b := 0; b < def.CodeBits; b++ {
			m := def.Nearest(c ^ 1<<b)
			require.True(t, m.OK)
			require.Equal(t, i, m.Index)
			require.Equal(t, 1, m.Distance)
		}
	}
}

func TestGoLiteral(t *testing.T) {
	def := scenarioDefinition()
	actual := def.GoLiteral("cardCodes")
	expected := "// matrix codes, 6 bits, minimum distance 3\n" +
		"var cardCodes = [8]uint64{\n" +
		"\t0x15, 0x02, 0x3B, 0x2C, 0x09, 0x1E, 0x27, 0x30,\n" +
		"}\n"
	require.Equal(t, expected, actual)
}

func TestString(t *testing.T) {
	actual := scenarioDefinition().String()
	require.True(t, strings.Contains(actual, "Minimum Distance: 3  Correctable Bits: 1"))
	require.True(t, strings.Contains(actual, "Polynomial: 10111"))
	require.True(t, strings.Contains(actual, "  011100\n  101110\n  010111\n"))
}
