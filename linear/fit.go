package linear

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/toxicafunk/doddle-model/optimize"
	"github.com/toxicafunk/doddle-model/pkg/errors"
)

// Fit trains the classifier on (X, y) and returns the trained instance.
// Labels must be the integers 0..k-1 for some k >= 2; the class count is
// discovered from y. The receiver is not modified.
//
// The feature matrix is used as given: callers that want an intercept term
// should prepend a bias column of ones (see preprocessing.AddBias), which
// the ridge penalty then leaves unregularized.
func (c *SoftmaxClassifier) Fit(X mat.Matrix, y []int, opts ...optimize.Option) (*SoftmaxClassifier, error) {
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return nil, errors.NewValueError("SoftmaxClassifier.Fit", "empty feature matrix")
	}
	if len(y) != n {
		return nil, errors.NewDimensionError("SoftmaxClassifier.Fit", n, len(y), 0)
	}

	numClasses := 0
	for _, label := range y {
		if label < 0 {
			return nil, errors.NewValueError("SoftmaxClassifier.Fit", "labels must be non-negative integers")
		}
		if label+1 > numClasses {
			numClasses = label + 1
		}
	}
	if numClasses < 2 {
		return nil, errors.NewValidationError("y", "training target must contain at least 2 classes", numClasses)
	}

	sized, err := c.WithClassCount(numClasses)
	if err != nil {
		return nil, err
	}

	gd := optimize.NewGradientDescent(opts...)
	init := mat.NewVecDense(d*(numClasses-1), nil)

	w, iters, err := gd.Minimize(func(w *mat.VecDense) (float64, *mat.VecDense, error) {
		return sized.Evaluate(w, X, y)
	}, init)
	if err != nil {
		return nil, err
	}

	slog.Debug("softmax training finished",
		"samples", n,
		"features", d,
		"classes", numClasses,
		"iterations", iters,
	)

	return sized.WithParameters(w)
}
