package optimize

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/cardcodes/codes/hamming"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

const batchSize = 1 << 12

var primes = [3]int{7, 11, 13}

func maskedKey(codes []uint64, codeBits int, mask uint64) string {
	masked := make([]uint64, len(codes))
	for i, c := range codes {
		masked[i] = c ^ mask
	}
	return hamming.FoldedKey(hamming.Histogram(masked, codeBits), codeBits, len(codes))
}

// Distribution searches every mask in [0, 2^codeBits-1) for the XOR that best
// balances ones and zeros across the code set. Masks are compared on the
// folded histogram key, the smallest key wins and ties keep the earliest mask.
// It returns the masked codes and the mask used.
// Threads if zero will use all current CPUs.
func Distribution(ctx context.Context, codes []uint64, codeBits, threads int) ([]uint64, uint64, error) {
	if codeBits <= 0 || codeBits > 63 {
		return nil, 0, fmt.Errorf("code bits (%v) must be in [1,63]", codeBits)
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	total := uint64(1)<<uint(codeBits) - 1
	bestMask := uint64(0)
	bestKey := ""

	bar := pb.Full.New(int(total))
	bar.Set("prefix", "Masks ")
	bar.SetWriter(os.Stdout)
	if logrus.GetLevel() == logrus.DebugLevel {
		bar.Start()
	}
	defer bar.Finish()

	// each batch is computed in parallel then folded in mask order
	// so the result is the same as a sequential scan
	keys := make([]string, batchSize)
	for start := uint64(0); start < total; start += batchSize {
		select {
		case <-ctx.Done():
			return nil, 0, fmt.Errorf("early termination")
		default:
		}

		end := start + batchSize
		if end > total {
			end = total
		}

		pool := threadpool.NewFixedSize(ctx, threads, int(end-start))
		for m := start; m < end; m++ {
			mask := m
			pool.Add(func() {
				keys[mask-start] = maskedKey(codes, codeBits, mask)
			})
		}
		pool.Wait()

		select {
		case <-ctx.Done():
			return nil, 0, fmt.Errorf("early termination")
		default:
		}

		for m := start; m < end; m++ {
			key := keys[m-start]
			if bestKey == "" || key < bestKey {
				bestKey = key
				bestMask = m
			}
		}
		bar.Add(int(end - start))
	}

	logrus.Debugf("Binary distribution mask %0*b with key %v", codeBits, bestMask, bestKey)

	result := slices.Clone(codes)
	for i := range result {
		result[i] ^= bestMask
	}
	return result, bestMask, nil
}

// Shuffle returns a deterministic permutation of codes. It walks count*17
// steps swapping the entries offset by a rotating cycle of small primes.
func Shuffle(codes []uint64) []uint64 {
	result := slices.Clone(codes)
	count := len(result)
	if count == 0 {
		return result
	}

	for i := 0; i < count*17; i++ {
		a := (i + primes[i%3]) % count
		b := (i + primes[(i+1)%3]) % count
		result[a], result[b] = result[b], result[a]
	}
	return result
}
