package csv

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/cardcodes/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string

var header = []string{
	"Results File", "Type", "Flipped Bits", "Trials",
	"Correct", "Correct Std",
	"Misidentified", "Misidentified Std",
	"Rejected", "Rejected Std",
}

// CSVRun writes one row per results file and flipped bit count.
var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	results, flips, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(header); err != nil {
		fmt.Println(err)
		return
	}

	for i, r := range results {
		name := strings.TrimSuffix(args[i], filepath.Ext(args[i]))
		for _, flip := range flips {
			s, has := r.Stats[flip]
			if !has {
				continue
			}
			record := []string{name, r.TypeInfo, strconv.Itoa(flip), strconv.Itoa(s.Correct.Count)}
			record = append(record, meanStd(s.Correct)...)
			record = append(record, meanStd(s.Misidentified)...)
			record = append(record, meanStd(s.Rejected)...)
			if err = w.Write(record); err != nil {
				fmt.Println(err)
				return
			}
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		fmt.Println(err)
	}
}

func meanStd(a avgstd.AvgStd) []string {
	return []string{
		strconv.FormatFloat(a.Mean, 'f', -1, 64),
		strconv.FormatFloat(math.Sqrt(a.SampledVariance()), 'f', -1, 64),
	}
}
