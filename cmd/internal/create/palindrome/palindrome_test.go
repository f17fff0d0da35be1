package palindrome

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathanhack/cardcodes/cmd/internal/tools"
	"github.com/nathanhack/cardcodes/codes/palindrome"
	"golang.org/x/exp/slices"
)

func TestPalindromeRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "codes.json")
	DataBits = 4
	Shuffle = false
	PalindromeRun(nil, []string{file})

	actual, err := tools.LoadCodeDefinition(file)
	if err != nil {
		t.Fatal(err)
	}
	if err := actual.Validate(); err != nil {
		t.Fatal(err)
	}

	expected, _ := palindrome.New(4, false)
	if !slices.Equal(actual.Codes, expected.Codes) {
		t.Fatalf("expected %v but found %v", expected.Codes, actual.Codes)
	}
}

func TestPalindromeRunInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "codes.json")
	DataBits = 0
	PalindromeRun(nil, []string{file})

	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written")
	}
}
