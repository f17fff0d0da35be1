package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/nathanhack/cardcodes/benchmarking"
	"github.com/nathanhack/cardcodes/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string

// outcome picks one of the read probabilities out of the stats
type outcome struct {
	name  string
	value func(s benchmarking.Stats) float64
}

var outcomes = []outcome{
	{"Correct", func(s benchmarking.Stats) float64 { return s.Correct.Mean }},
	{"Misidentified", func(s benchmarking.Stats) float64 { return s.Misidentified.Mean }},
	{"Rejected", func(s benchmarking.Stats) float64 { return s.Rejected.Mean }},
}

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	results, flips, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	names := make([]string, len(flips))
	for i, f := range flips {
		names[i] = fmt.Sprint(f)
	}

	page := components.NewPage()
	page.PageTitle = "Card Read Results"
	for _, o := range outcomes {
		page.AddCharts(outcomeBar(o, args, results, flips, names))
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	if err = page.Render(f); err != nil {
		fmt.Println(err)
	}
}

func outcomeBar(o outcome, files []string, results []*tools.SimulationStats, flips []int, names []string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    o.name,
			Subtitle: "probability of a read by number of flipped bits",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true, Orient: "vertical", Right: "0", Type: "scroll"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Flipped Bits"}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.name, Min: 0, Max: 1}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	bar.SetXAxis(names)

	for i, r := range results {
		data := make([]opts.BarData, len(flips))
		for j, f := range flips {
			if s, has := r.Stats[f]; has {
				data[j] = opts.BarData{Value: o.value(s)}
			} else {
				data[j] = opts.BarData{Value: nil}
			}
		}
		bar.AddSeries(files[i], data)
	}
	return bar
}
