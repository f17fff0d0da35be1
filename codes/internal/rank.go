package internal

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// SparseMatrix converts the flattened generator matrix into a sparse GF(2) matrix.
func SparseMatrix(matrix []uint8, dataBits int) mat.SparseMat {
	codeBits := len(matrix) / dataBits
	values := make([]int, len(matrix))
	for i, b := range matrix {
		values[i] = int(b)
	}
	return mat.CSRMat(dataBits, codeBits, values...)
}

// MatrixRank returns the GF(2) rank of the flattened generator matrix.
// Threads if zero will use all current CPUs.
func MatrixRank(ctx context.Context, matrix []uint8, dataBits, threads int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return CalculateRank(ctx, SparseMatrix(matrix, dataBits), threads, logrus.GetLevel() == logrus.DebugLevel)
}

// CalculateRank uses row echelon elimination to find the rank of H.
// Returns -1 when H is nil or the context was cancelled.
func CalculateRank(ctx context.Context, H mat.SparseMat, threads int, showProgressBar bool) int {
	if H == nil {
		return -1
	}

	tmp := mat.CSRMatCopy(H)
	rows, cols := H.Dims()

	min := rows
	if cols < rows {
		min = cols
	}

	return lowerTriangular(ctx, min, tmp, threads, showProgressBar)
}

func findPivotColGF2(H mat.SparseMat, forRow int) int {
	rows, _ := H.Dims()

	for r := forRow; r < rows; r++ {
		row := H.Row(r).NonzeroArray()
		if len(row) == 0 {
			continue
		}

		col := row[len(row)-1]
		if col > forRow {
			return col
		}
	}
	return -1
}

func pivots(H mat.SparseMat, rowIndex int) []int {
	pivots := H.Column(rowIndex).NonzeroArray()
	if len(pivots) == 0 || pivots[len(pivots)-1] < rowIndex {
		// nothing at or below rowIndex in this column so
		// we swap in a column that has one
		colPivot := findPivotColGF2(H, rowIndex)
		if colPivot == -1 {
			//all remaining rows are zero
			return nil
		}

		H.SwapColumns(rowIndex, colPivot)
		pivots = H.Column(rowIndex).NonzeroArray()
	}
	return pivots
}

func eliminateLowerRows(ctx context.Context, rowIndex int, H mat.SparseMat, threads int) {
	pivots := H.Column(rowIndex).NonzeroArray()
	pool := threadpool.NewFixedSize(ctx, threads, len(pivots))
	rrow := H.Row(rowIndex)
	mut := sync.RWMutex{}

	//in GF2 subtract is add
	for _, index := range pivots {
		p := index
		pool.Add(func() {
			if p <= rowIndex {
				return
			}
			mut.RLock()
			prow := H.Row(p)
			mut.RUnlock()
			prow.Add(prow, rrow)
			mut.Lock()
			H.SetRow(p, prow)
			mut.Unlock()
		})
	}
	pool.Wait()
}

func lowerTriangular(ctx context.Context, rows int, H mat.SparseMat, threads int, showProgressBar bool) int {
	bar := pb.Full.New(rows)
	logrus.Debugf("Row echelon")
	bar.Set("prefix", "Processing Row ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}

	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return -1
		default:
		}
		bar.Increment()

		p := pivots(H, r)
		if p == nil {
			bar.Finish()
			return r
		}

		// the last pivot is at or below r so it becomes row r
		H.SwapRows(r, p[len(p)-1])

		eliminateLowerRows(ctx, r, H, threads)
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()

	return rows
}
