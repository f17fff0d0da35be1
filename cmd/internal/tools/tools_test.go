package tools

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathanhack/cardcodes/benchmarking"
	"github.com/nathanhack/cardcodes/codes"
	"github.com/nathanhack/cardcodes/codes/palindrome"
	"github.com/nathanhack/cardcodes/codes/reversible"
	"golang.org/x/exp/slices"
)

func TestSaveLoadCodeDefinition(t *testing.T) {
	def, err := palindrome.New(4, false)
	if err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(t.TempDir(), "codes.json")
	if err := SaveCodeDefinition(file, def); err != nil {
		t.Fatal(err)
	}

	actual, err := LoadCodeDefinition(file)
	if err != nil {
		t.Fatal(err)
	}

	if actual.Algorithm != def.Algorithm || actual.CodeBits != def.CodeBits || actual.MinDistance != def.MinDistance {
		t.Fatalf("expected %v but found %v", def, actual)
	}
	if !slices.Equal(actual.Codes, def.Codes) {
		t.Fatalf("expected %v but found %v", def.Codes, actual.Codes)
	}
	if Md5Sum(actual) != Md5Sum(def) {
		t.Fatalf("expected matching checksums")
	}
}

func TestLoadCodeDefinitionMissing(t *testing.T) {
	_, err := LoadCodeDefinition(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestSaveLoadResults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "results.json")

	actual, err := LoadResults(file)
	if err != nil {
		t.Fatal(err)
	}
	if actual != nil {
		t.Fatalf("expected nil results for a missing file but found %v", actual)
	}

	stats := benchmarking.Stats{}
	stats.Correct.Update(1)
	stats.Misidentified.Update(0)
	stats.Rejected.Update(0)

	data := &SimulationStats{
		TypeInfo:  "BSC:nearest/maxErrors=1/reverse=0",
		CodesInfo: "abc",
		Stats:     map[int]benchmarking.Stats{2: stats},
	}
	if err := SaveResults(file, data); err != nil {
		t.Fatal(err)
	}

	actual, err = LoadResults(file)
	if err != nil {
		t.Fatal(err)
	}
	if actual.TypeInfo != data.TypeInfo || actual.CodesInfo != data.CodesInfo {
		t.Fatalf("expected %v but found %v", data, actual)
	}
	s, has := actual.Stats[2]
	if !has {
		t.Fatalf("expected stats for 2 flips")
	}
	if s.Correct.Count != 1 || s.Correct.Mean != 1 {
		t.Fatalf("expected %v but found %v", stats, s)
	}
}

func TestMd5SumDiffers(t *testing.T) {
	a, err := reversible.New(5, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := reversible.New(5, true)
	if err != nil {
		t.Fatal(err)
	}
	if Md5Sum(a) == Md5Sum(b) {
		t.Fatalf("expected shuffled codes to have a different checksum")
	}
}

func TestReport(t *testing.T) {
	def, err := palindrome.New(4, false)
	if err != nil {
		t.Fatal(err)
	}

	buf := bytes.Buffer{}
	Report(&buf, def, false)
	out := buf.String()
	for _, expected := range []string{"Minimum Distance: 3", "CODES WITH BITS SET", "var cardCodes = [16]uint64{"} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in report:\n%v", expected, out)
		}
	}
	if strings.Contains(out, "Distance Map") {
		t.Fatalf("did not expect a distance map without verbose")
	}

	buf.Reset()
	Report(&buf, def, true)
	if !strings.Contains(buf.String(), "Distance Map") {
		t.Fatalf("expected a distance map when verbose")
	}
}

func TestLoadAllResults(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	if err := SaveResults(a, &SimulationStats{Stats: map[int]benchmarking.Stats{3: {}, 0: {}}}); err != nil {
		t.Fatal(err)
	}
	if err := SaveResults(b, &SimulationStats{Stats: map[int]benchmarking.Stats{1: {}, 3: {}}}); err != nil {
		t.Fatal(err)
	}

	results, flips, err := LoadAllResults([]string{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results but found %v", len(results))
	}
	if !slices.Equal(flips, []int{0, 1, 3}) {
		t.Fatalf("expected [0 1 3] but found %v", flips)
	}

	if _, _, err := LoadAllResults([]string{a, filepath.Join(dir, "missing.json")}); err == nil {
		t.Fatalf("expected an error for a missing results file")
	}
}

func TestReportGoLiteral(t *testing.T) {
	def, err := palindrome.New(4, false)
	if err != nil {
		t.Fatal(err)
	}

	buf := bytes.Buffer{}
	Report(&buf, def, false)

	expected := `// palindrome codes, 9 bits, minimum distance 3
var cardCodes = [16]uint64{
	0x0AA, 0x092, 0x0FE, 0x0C6, 0x038, 0x000, 0x06C, 0x054,
	0x1BB, 0x183, 0x1EF, 0x1D7, 0x129, 0x111, 0x17D, 0x145,
}
`
	if !strings.HasSuffix(buf.String(), expected) {
		t.Fatalf("expected the report to end with:\n%v\nbut found:\n%v", expected, buf.String())
	}
}

func TestReportWideCodes(t *testing.T) {
	def := &codes.CodeDefinition{Algorithm: codes.Matrix, Codes: []uint64{0xFF, 1}, CodeBits: 6, DataBits: 1, MinDistance: 1}

	buf := bytes.Buffer{}
	Report(&buf, def, true)
	if !strings.Contains(buf.String(), "var cardCodes = [2]uint64{") {
		t.Fatalf("expected the Go literal in the report:\n%v", buf.String())
	}
}
