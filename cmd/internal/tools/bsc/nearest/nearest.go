package nearest

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/cardcodes/benchmarking"
	"github.com/nathanhack/cardcodes/cmd/internal/tools"
	"github.com/nathanhack/cardcodes/cmd/internal/tools/bsc"
	"github.com/nathanhack/cardcodes/codes"
	"github.com/spf13/cobra"
)

var (
	Trials             uint
	Flips              []int
	Threads            uint
	MaxErrors          int
	ReverseProbability float64
)

var NearestRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Println("requires both CODES_JSON RESULT_JSON")
		return
	}

	def, err := tools.LoadCodeDefinition(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	if ReverseProbability < 0 || ReverseProbability > 1 {
		fmt.Println("required: 0 <= reverse <= 1")
		return
	}

	maxErrors := MaxErrors
	if maxErrors < 0 {
		maxErrors = def.CorrectableBits()
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadResults(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}

	if data == nil {
		data = &tools.SimulationStats{
			TypeInfo:  typeInfo(maxErrors),
			CodesInfo: tools.Md5Sum(def),
			Stats:     make(map[int]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo(maxErrors) {
		fmt.Printf("results loaded do not match the same type expected %v but found %v\n", typeInfo(maxErrors), data.TypeInfo)
		return
	}
	if data.CodesInfo != tools.Md5Sum(def) {
		fmt.Println("results loaded do not match the codes")
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runSimulation(ctx, data, def, maxErrors, args[1])

	err = tools.SaveResults(args[1], data)
	if err != nil {
		fmt.Println(err)
	}
}

func typeInfo(maxErrors int) string {
	return fmt.Sprintf("BSC:nearest/maxErrors=%v/reverse=%v", maxErrors, ReverseProbability)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runSimulation(ctx context.Context, data *tools.SimulationStats, def *codes.CodeDefinition, maxErrors int, outputFilename string) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThread := int(Threads)
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}

	trialsPerIter := numberOfThread * 100
	bar := pb.StartNew(int(Trials) * len(Flips))
trialLoops:
	for t := trialsPerIter; t < int(Trials)+trialsPerIter; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, f := range Flips {
			checkpoint := func(stats benchmarking.Stats) {
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				if checkpointCount%trialsPerIter == 0 {
					data.Stats[f] = stats
					if err := tools.SaveResults(outputFilename, data); err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}
			data.Stats[f] = bsc.RunBSC(ctx, def, f, maxErrors, ReverseProbability, min(t, int(Trials)), numberOfThread, data.Stats[f], checkpoint, false)
			bar.Add(trialsPerIter)
		}
	}
	bar.Finish()
}
