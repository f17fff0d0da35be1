package matrix

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/cardcodes/codes"
	"github.com/nathanhack/cardcodes/codes/hamming"
	"github.com/nathanhack/cardcodes/codes/internal"
	"github.com/nathanhack/cardcodes/codes/optimize"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// candidate is the code set built from one polynomial
type candidate struct {
	distance int
	improved bool
	poly     uint64
	matrix   []uint8
	codes    []uint64
}

// Polynomial returns the proper generator polynomial for polyBase, the top
// guard bit and bit 0 are always set.
func Polynomial(parityBits int, polyBase uint64) uint64 {
	return 1<<uint(parityBits+1) | polyBase<<1 | 1
}

// Codes multiplies every dataBits wide vector against matrix and XORs the
// result with the alternating mask.
func Codes(matrix []uint8, codeBits, dataBits int) []uint64 {
	mask := internal.AlternatingMask(codeBits)
	result := make([]uint64, 1<<uint(dataBits))
	for v := range result {
		result[v] = internal.Multiply(matrix, dataBits, uint64(v)) ^ mask
	}
	return result
}

func evaluate(codeBits, dataBits, parityBits int, polyBase uint64, bestKnown int) candidate {
	poly := Polynomial(parityBits, polyBase)
	matrix := internal.GenerateMdsMatrix(codeBits, dataBits, poly)
	c := Codes(matrix, codeBits, dataBits)
	d, improved := hamming.MinimumDistance(c, codeBits, bestKnown, false)
	return candidate{
		distance: d,
		improved: improved,
		poly:     poly,
		matrix:   matrix,
		codes:    c,
	}
}

// New searches every proper generator polynomial for the one whose code set
// has the largest minimum Hamming distance, the first found wins ties.
// The winning codes are optionally balanced (binaryOptimization) and then
// optionally shuffled. Threads if zero will use all current CPUs.
func New(ctx context.Context, codeBits, dataBits int, binaryOptimization, shuffle bool, threads int) (*codes.CodeDefinition, error) {
	if dataBits < 1 {
		return nil, fmt.Errorf("%w: data bits (%v) must be >=1", codes.ErrInvalidParameters, dataBits)
	}
	if codeBits > 63 {
		return nil, fmt.Errorf("%w: code bits (%v) must be <=63", codes.ErrInvalidParameters, codeBits)
	}
	parityBits := codeBits - dataBits
	if parityBits < 1 {
		return nil, fmt.Errorf("%w: code bits (%v) must be greater than data bits (%v)", codes.ErrInvalidParameters, codeBits, dataBits)
	}
	if dataBits > 16 || parityBits > 31 {
		return nil, fmt.Errorf("%w: search space for %v data bits and %v parity bits is too large", codes.ErrInvalidParameters, dataBits, parityBits)
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	total := uint64(1) << uint(parityBits-1)
	logrus.Debugf("Searching %v polynomials for %v/%v codes", total, codeBits, dataBits)

	bar := pb.Full.New(int(total))
	bar.Set("prefix", "Polynomials ")
	bar.SetWriter(os.Stdout)
	if logrus.GetLevel() == logrus.DebugLevel {
		bar.Start()
	}

	batchSize := uint64(threads * 8)
	best := candidate{}
	results := make([]candidate, batchSize)
	for start := uint64(0); start < total; start += batchSize {
		select {
		case <-ctx.Done():
			bar.Finish()
			return nil, fmt.Errorf("early termination")
		default:
		}

		end := start + batchSize
		if end > total {
			end = total
		}

		// every candidate in the batch comes after all the candidates that
		// produced best, so early exits against it can't change the fold
		bestKnown := best.distance
		pool := threadpool.NewFixedSize(ctx, threads, int(end-start))
		for b := start; b < end; b++ {
			polyBase := b
			pool.Add(func() {
				results[polyBase-start] = evaluate(codeBits, dataBits, parityBits, polyBase, bestKnown)
			})
		}
		pool.Wait()

		select {
		case <-ctx.Done():
			bar.Finish()
			return nil, fmt.Errorf("early termination")
		default:
		}

		for i := 0; i < int(end-start); i++ {
			r := results[i]
			if r.improved && r.distance > best.distance {
				logrus.Debugf("Polynomial %b has minimum distance %v", r.poly, r.distance)
				best = r
			}
		}
		bar.Add(int(end - start))
	}
	bar.Finish()

	if best.distance <= 0 {
		return nil, fmt.Errorf("%w: for %v code bits and %v data bits", codes.ErrNoValidCandidate, codeBits, dataBits)
	}

	def := &codes.CodeDefinition{
		Algorithm:   codes.Matrix,
		Codes:       best.codes,
		CodeBits:    codeBits,
		DataBits:    dataBits,
		MinDistance: best.distance,
		Polynomial:  best.poly,
		Matrix:      best.matrix,
	}

	if binaryOptimization {
		logrus.Debugf("Optimizing binary distribution")
		optimized, mask, err := optimize.Distribution(ctx, def.Codes, codeBits, threads)
		if err != nil {
			return nil, err
		}
		def.Codes = optimized
		def.Mask = mask
	}

	if shuffle {
		def.Codes = optimize.Shuffle(def.Codes)
	}

	return def, nil
}
