package cmd

import (
	"github.com/nathanhack/cardcodes/cmd/internal/tools/analyze"
	"github.com/nathanhack/cardcodes/cmd/internal/tools/bsc/nearest"
	"github.com/nathanhack/cardcodes/cmd/internal/tools/chart"
	"github.com/nathanhack/cardcodes/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for card code sets",
	Long:    `Tools for card code sets`,
}

// toolsAnalyzeCmd represents the analyze command
var toolsAnalyzeCmd = &cobra.Command{
	Use:     "analyze CODES_JSON",
	Aliases: []string{"a"},
	Short:   "Validates and reports on a code set",
	Long:    `Validates a code set and prints its statistics, weight histogram, distance histogram and Go literal`,
	Args:    cobra.ExactArgs(1),
	Run:     analyze.AnalyzeRun,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for card code sets`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator for card code sets`,
}

// toolsNearestCmd represents the nearest command
var toolsNearestCmd = &cobra.Command{
	Use:     "nearest CODES_JSON RESULT_JSON",
	Aliases: []string{"n"},
	Short:   "A BSC simulator decoding each read to the nearest code",
	Long:    `A BSC simulator that flips a fixed number of bits per read, optionally reverses the read, and decodes it to the nearest code within the error budget`,
	Run:     nearest.NearestRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file with one row per results file and flipped bit count`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an html bar chart",
	Long:  `Export the correct, misidentified and rejected read rates to an html page of bar charts`,
	Run:   chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsAnalyzeCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsAnalyzeCmd.Flags().BoolVarP(&analyze.Verbose, "verbose", "v", false, "also print the pairwise distance map")

	toolsChansimCmd.AddCommand(toolsBscCmd)

	toolsBscCmd.AddCommand(toolsNearestCmd)
	toolsNearestCmd.Flags().UintVarP(&nearest.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsNearestCmd.Flags().IntSliceVarP(&nearest.Flips, "flips", "f", []int{0, 1, 2, 3}, "the number of bits flipped per read")
	toolsNearestCmd.Flags().UintVar(&nearest.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsNearestCmd.Flags().IntVarP(&nearest.MaxErrors, "errors", "e", -1, "max bit errors the decoder accepts (negative means the correctable bits of the code set)")
	toolsNearestCmd.Flags().Float64VarP(&nearest.ReverseProbability, "reverse", "r", 0, "probability a read is reversed [0, 1]")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the html chart")
}
