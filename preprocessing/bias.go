// Package preprocessing provides feature matrix preparation helpers.
package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/toxicafunk/doddle-model/core/parallel"
	"github.com/toxicafunk/doddle-model/pkg/errors"
)

// row counts at or below this are copied sequentially
const parallelThreshold = 1000

// AddBias returns a copy of X with a leading column of ones, the bias
// column the linear models expect. The ridge penalty skips the weight row
// that multiplies this column.
func AddBias(X mat.Matrix) (*mat.Dense, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("AddBias", "empty matrix")
	}

	out := mat.NewDense(r, c+1, nil)

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				out.Set(i, j+1, X.At(i, j))
			}
		}
	})

	return out, nil
}
