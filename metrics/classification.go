// Package metrics provides evaluation metrics for doddle-model estimators.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/toxicafunk/doddle-model/pkg/errors"
)

// probability clamp for LogLoss, matching scikit-learn's default
const logLossEps = 1e-15

// Accuracy returns the fraction of predictions that match the true labels.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// LogLoss returns the mean negative log-likelihood of the true labels under
// the predicted probability matrix. Probabilities are clamped away from 0
// and 1 so a confident wrong prediction stays finite.
func LogLoss(yTrue []int, proba mat.Matrix) (float64, error) {
	n, k := proba.Dims()
	if n == 0 || k == 0 {
		return 0, errors.NewValueError("LogLoss", "empty probability matrix")
	}
	if len(yTrue) != n {
		return 0, errors.NewDimensionError("LogLoss", n, len(yTrue), 0)
	}

	var sum float64
	for i, label := range yTrue {
		if label < 0 || label >= k {
			return 0, errors.NewValueError("LogLoss", "label outside probability matrix columns")
		}
		p := proba.At(i, label)
		if p < logLossEps {
			p = logLossEps
		} else if p > 1-logLossEps {
			p = 1 - logLossEps
		}
		sum -= math.Log(p)
	}
	return sum / float64(n), nil
}
