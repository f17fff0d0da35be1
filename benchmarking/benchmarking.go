package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/threadpool"
)

type Stats struct {
	Correct       avgstd.AvgStd // probability a read decodes to the card that was printed
	Misidentified avgstd.AvgStd // probability a read decodes to some other card
	Rejected      avgstd.AvgStd // probability a read is not decodable within the error budget
}

func (s Stats) String() string {
	return fmt.Sprintf("{Correct:%0.02f(+/-%0.02f), Misidentified:%0.02f(+/-%0.02f), Rejected:%0.02f(+/-%0.02f)}",
		s.Correct.Mean, math.Sqrt(s.Correct.SampledVariance()),
		s.Misidentified.Mean, math.Sqrt(s.Misidentified.SampledVariance()),
		s.Rejected.Mean, math.Sqrt(s.Rejected.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

type CardConstructor func(trial int) (card int)
type CardEncoder func(card int) (code uint64)
type BinarySymmetricChannel func(code uint64) (channelInducedCode uint64)
type CardDecoder func(channelInducedCode uint64) (card int, ok bool)

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createCard CardConstructor,
	encode CardEncoder,
	channel BinarySymmetricChannel,
	decode CardDecoder,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createCard, encode, channel, decode, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createCard CardConstructor,
	encode CardEncoder,
	channel BinarySymmetricChannel,
	decode CardDecoder,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.Correct.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		card := createCard(i)

		// print the card
		code := encode(card)

		// read it back through the channel
		read := channel(code)

		decoded, ok := decode(read)

		var correct, misidentified, rejected float64
		switch {
		case !ok:
			rejected = 1
		case decoded == card:
			correct = 1
		default:
			misidentified = 1
		}

		statsMux.Lock()
		previousStats.Correct.Update(correct)
		previousStats.Misidentified.Update(misidentified)
		previousStats.Rejected.Update(rejected)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.Correct.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}
