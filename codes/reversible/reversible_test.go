package reversible

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/nathanhack/cardcodes/codes"
	"github.com/nathanhack/cardcodes/codes/hamming"
	"github.com/nathanhack/cardcodes/codes/internal"
)

func TestNew(t *testing.T) {
	for dataBits := 5; dataBits <= 10; dataBits++ {
		t.Run(strconv.Itoa(dataBits), func(t *testing.T) {
			actual, err := New(dataBits, false)
			if err != nil {
				t.Fatalf("expected no error found: %v", err)
			}
			codeBits := 2*dataBits + 1
			if actual.CodeBits != codeBits {
				t.Fatalf("expected %v code bits but found %v", codeBits, actual.CodeBits)
			}
			if actual.Len() != 1<<dataBits {
				t.Fatalf("expected %v codes but found %v", 1<<dataBits, actual.Len())
			}
			if !actual.Reversible {
				t.Fatalf("expected a reversible code set")
			}

			d, _ := hamming.MinimumDistance(actual.Codes, codeBits, 0, true)
			if d < 3 || actual.MinDistance != d {
				t.Fatalf("expected minimum distance >=3 (%v) but found %v", actual.MinDistance, d)
			}

			for i, c := range actual.Codes {
				if c == internal.ReverseBits(c, codeBits) {
					t.Fatalf("code %v (%b) equals its own reversal", i, c)
				}
			}

			if err := actual.Validate(); err != nil {
				t.Fatalf("expected valid code set: %v", err)
			}
		})
	}
}

func TestNewFiveBits(t *testing.T) {
	actual, err := New(5, false)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	expected := []uint64{685, 750, 552, 619, 932, 999, 801, 866}
	if !reflect.DeepEqual(expected, actual.Codes[:8]) {
		t.Fatalf("expected %v but found %v", expected, actual.Codes[:8])
	}
	for i, c := range actual.Codes {
		if c == internal.ReverseBits(c, 11) {
			t.Fatalf("code %v (%011b) equals its own 11 bit reversal", i, c)
		}
	}

	shuffled, err := New(5, true)
	if err != nil {
		t.Fatalf("expected no error found: %v", err)
	}
	expected = []uint64{932, 999, 801, 122, 188, 371, 437, 866}
	if !reflect.DeepEqual(expected, shuffled.Codes[:8]) {
		t.Fatalf("expected %v but found %v", expected, shuffled.Codes[:8])
	}
}

func TestNewTooFewBits(t *testing.T) {
	actual, err := New(4, false)
	if !errors.Is(err, codes.ErrInvalidParameters) {
		t.Fatalf("expected invalid parameters but found %v", err)
	}
	if !strings.Contains(err.Error(), "must have at least 5 bits of data") {
		t.Fatalf("unexpected message: %v", err)
	}
	if actual != nil {
		t.Fatalf("expected no code set")
	}
}

func TestCode(t *testing.T) {
	// 0 duplicated around its parity bit is all zeros so only the mask remains
	if Code(0, 5) != Mask(11) {
		t.Fatalf("expected %011b but found %011b", Mask(11), Code(0, 5))
	}
	if Mask(11) != 0b01010101101 {
		t.Fatalf("expected 01010101101 but found %011b", Mask(11))
	}
	if Code(1, 5)^Mask(11) != 0b00001000011 {
		t.Fatalf("expected 00001000011 but found %011b", Code(1, 5)^Mask(11))
	}
}
