package bsc

import (
	"context"

	"github.com/nathanhack/cardcodes/benchmarking"
	"github.com/nathanhack/cardcodes/codes"
	"github.com/nathanhack/cardcodes/codes/hamming"
)

//RunBSC simulates reading cards through a binary symmetric channel that flips
// exactly flips bits per read and, with reverseProbability, reads the card backwards.
// Reads are decoded to the nearest code within maxErrors.
func RunBSC(ctx context.Context,
	def *codes.CodeDefinition,
	flips, maxErrors int, reverseProbability float64,
	trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createCard := func(trial int) int {
		return benchmarking.RandomCard(def.Len())
	}

	encode := func(card int) uint64 {
		return def.Codes[card]
	}

	channel := func(code uint64) uint64 {
		read := benchmarking.RandomFlipBitCount(code, def.CodeBits, flips)
		return benchmarking.RandomReverse(read, def.CodeBits, reverseProbability)
	}

	decode := func(read uint64) (int, bool) {
		m := hamming.Nearest(def.Codes, def.CodeBits, read, maxErrors, def.Reversible)
		return m.Index, m.OK
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createCard, encode, channel, decode, checkpoints, previousStats, showProgress)
}
