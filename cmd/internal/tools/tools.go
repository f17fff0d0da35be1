package tools

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/nathanhack/cardcodes/benchmarking"
	"github.com/nathanhack/cardcodes/codes"
	"github.com/nathanhack/cardcodes/codes/hamming"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"
)

//SimulationStats holds the results of a channel simulation keyed by the number of flipped bits per read.
type SimulationStats struct {
	TypeInfo  string
	CodesInfo string
	Stats     map[int]benchmarking.Stats
}

func Md5Sum(def *codes.CodeDefinition) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(fmt.Sprint(def.CodeBits, def.Reversible, def.Codes))))
}

func LoadCodeDefinition(filepath string) (*codes.CodeDefinition, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the CODES_JSON file must exist")
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var def codes.CodeDefinition
	err = json.Unmarshal(bs, &def)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	return &def, nil
}

func SaveCodeDefinition(filepath string, def *codes.CodeDefinition) error {
	bs, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize the codes: %v", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("unable to write file %v: %v", filepath, err)
	}
	return nil
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %v", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %v", filepath, err)
	}
	return nil
}

//LoadAllResults loads every results file, all must exist. It also returns
// the sorted union of the flipped bit counts found in them.
func LoadAllResults(files []string) ([]*SimulationStats, []int, error) {
	results := make([]*SimulationStats, len(files))
	seen := make(map[int]bool)
	flips := make([]int, 0)
	for i, file := range files {
		r, err := LoadResults(file)
		if err != nil {
			return nil, nil, err
		}
		if r == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", file)
		}
		for f := range r.Stats {
			if !seen[f] {
				seen[f] = true
				flips = append(flips, f)
			}
		}
		results[i] = r
	}
	sort.Ints(flips)
	return results, flips, nil
}

//Report writes the statistics, the bit histogram and the Go literal of the codes.
// When verbose the full pairwise distance map is included.
func Report(w io.Writer, def *codes.CodeDefinition, verbose bool) {
	fmt.Fprint(w, def.String())
	fmt.Fprintln(w)

	hist := hamming.Histogram(def.Codes, def.CodeBits)
	distances := hamming.DistanceCounts(def.Codes, def.CodeBits, def.Reversible)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Bits", "Codes With Bits Set", "Pairs At Distance"})
	for k := range hist {
		table.Append([]string{strconv.Itoa(k), strconv.Itoa(hist[k]), strconv.Itoa(distances[k])})
	}
	table.Render()
	fmt.Fprintln(w)

	if verbose {
		if dm := hamming.DistanceMap(def.Codes, def.CodeBits, def.Reversible); dm != nil {
			fmt.Fprintf(w, "Distance Map:\n%v\n\n", mat.Formatted(dm, mat.Squeeze()))
		}
	}

	fmt.Fprint(w, def.GoLiteral("cardCodes"))
}
