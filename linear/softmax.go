// Package linear implements linear classification models on top of gonum.
package linear

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/toxicafunk/doddle-model/core/model"
	"github.com/toxicafunk/doddle-model/pkg/errors"
)

const softmaxModelName = "SoftmaxClassifier"

var _ model.ProbabilisticClassifier = (*SoftmaxClassifier)(nil)

// SoftmaxClassifier is a multinomial logistic regression classifier trained
// by maximum likelihood with an L2 (ridge) penalty on the non-intercept
// weights.
//
// The model uses a reduced-rank parameterization: with k classes and d
// features, the flat parameter vector holds a d x (k-1) row-major matrix of
// weights, entry (j, c) at index j*(k-1)+c. The last class is the pivot and
// carries no free parameters; its linear score is implicitly zero, which
// resolves the additive shift invariance of softmax. By convention column 0
// of the feature matrix is the bias column of ones, so row 0 of the weight
// matrix holds the intercepts and is excluded from regularization.
//
// Values are immutable. Construction and the WithClassCount, WithParameters
// and Fit transitions each return a new value; loss and gradient evaluation
// never mutate the receiver, so one value can be shared freely between
// goroutines.
type SoftmaxClassifier struct {
	lambda     float64
	numClasses int           // 0 while the class count is unknown
	weights    *mat.VecDense // nil until trained
	state      model.State
}

// NewSoftmaxClassifier creates an untrained classifier without
// regularization.
func NewSoftmaxClassifier() *SoftmaxClassifier {
	return &SoftmaxClassifier{state: model.Untrained}
}

// NewSoftmaxClassifierWithLambda creates an untrained classifier with the
// given regularization strength. An explicitly supplied lambda must be
// strictly positive; use NewSoftmaxClassifier for an unregularized model.
func NewSoftmaxClassifierWithLambda(lambda float64) (*SoftmaxClassifier, error) {
	if lambda <= 0 {
		return nil, errors.NewValidationError("lambda", "must be strictly positive", lambda)
	}
	return &SoftmaxClassifier{lambda: lambda, state: model.Untrained}, nil
}

// WithClassCount returns a new classifier with the number of target classes
// fixed. The class count is set exactly once, when the cardinality of the
// training target becomes known. Sizing for exactly two classes emits an
// advisory TwoClassWarning and proceeds.
func (c *SoftmaxClassifier) WithClassCount(numClasses int) (*SoftmaxClassifier, error) {
	if c.numClasses != 0 {
		return nil, errors.NewValidationError("numClasses", "class count is already set", c.numClasses)
	}
	if numClasses < 2 {
		return nil, errors.NewValidationError("numClasses", "at least 2 classes are required", numClasses)
	}
	if numClasses == 2 {
		errors.Warn(errors.NewTwoClassWarning(softmaxModelName))
	}
	return &SoftmaxClassifier{
		lambda:     c.lambda,
		numClasses: numClasses,
		state:      model.Sized,
	}, nil
}

// WithParameters returns a new trained classifier with the parameter vector
// fixed. The vector is copied; the caller keeps ownership of w.
func (c *SoftmaxClassifier) WithParameters(w *mat.VecDense) (*SoftmaxClassifier, error) {
	if c.numClasses == 0 {
		return nil, errors.NewNotSizedError(softmaxModelName, "WithParameters")
	}
	return &SoftmaxClassifier{
		lambda:     c.lambda,
		numClasses: c.numClasses,
		weights:    mat.VecDenseCopyOf(w),
		state:      model.Trained,
	}, nil
}

// Lambda returns the regularization strength.
func (c *SoftmaxClassifier) Lambda() float64 { return c.lambda }

// NumClasses returns the number of target classes, or 0 if not yet set.
func (c *SoftmaxClassifier) NumClasses() int { return c.numClasses }

// State returns the lifecycle state of this value.
func (c *SoftmaxClassifier) State() model.State { return c.state }

// Weights returns a copy of the trained parameter vector, or nil if the
// model is not trained.
func (c *SoftmaxClassifier) Weights() *mat.VecDense {
	if c.weights == nil {
		return nil
	}
	return mat.VecDenseCopyOf(c.weights)
}

// PredictProba returns the class-probability matrix for X, one row per
// sample and one column per class. Every row sums to 1.
func (c *SoftmaxClassifier) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if c.state != model.Trained {
		return nil, errors.NewNotFittedError(softmaxModelName, "PredictProba")
	}
	return c.probaWith(c.weights, X, "SoftmaxClassifier.PredictProba")
}

// Predict returns the predicted class index for each row of X, the arg-max
// of the corresponding row of PredictProba.
func (c *SoftmaxClassifier) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if c.state != model.Trained {
		return nil, errors.NewNotFittedError(softmaxModelName, "Predict")
	}
	proba, err := c.probaWith(c.weights, X, "SoftmaxClassifier.Predict")
	if err != nil {
		return nil, err
	}

	n, _ := proba.Dims()
	labels := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		best := 0
		bestProb := proba.At(i, 0)
		for j := 1; j < c.numClasses; j++ {
			if p := proba.At(i, j); p > bestProb {
				bestProb = p
				best = j
			}
		}
		labels.SetVec(i, float64(best))
	}
	return labels, nil
}

// Loss returns the regularized negative log-likelihood of the trial
// parameters w on (X, y): the mean of -log P[i, y[i]] plus
// 0.5*lambda*sum(squares of the non-intercept weights).
func (c *SoftmaxClassifier) Loss(w *mat.VecDense, X mat.Matrix, y []int) (float64, error) {
	if c.numClasses == 0 {
		return 0, errors.NewNotSizedError(softmaxModelName, "Loss")
	}
	if err := c.checkTargets("SoftmaxClassifier.Loss", X, y); err != nil {
		return 0, err
	}
	proba, err := c.probaWith(w, X, "SoftmaxClassifier.Loss")
	if err != nil {
		return 0, err
	}
	return c.lossFromProba(w, X, y, proba), nil
}

// LossGrad returns the gradient of Loss with respect to w, flattened in the
// same row-major layout as w. It is self-contained: probabilities are
// computed from the w it is given, so no call-ordering contract with Loss
// is required.
func (c *SoftmaxClassifier) LossGrad(w *mat.VecDense, X mat.Matrix, y []int) (*mat.VecDense, error) {
	if c.numClasses == 0 {
		return nil, errors.NewNotSizedError(softmaxModelName, "LossGrad")
	}
	if err := c.checkTargets("SoftmaxClassifier.LossGrad", X, y); err != nil {
		return nil, err
	}
	proba, err := c.probaWith(w, X, "SoftmaxClassifier.LossGrad")
	if err != nil {
		return nil, err
	}
	return c.gradFromProba(w, X, y, proba), nil
}

// Evaluate returns the loss and its gradient at w in one pass, computing
// the probability matrix once and using it for both outputs. Optimizers
// should prefer this over separate Loss and LossGrad calls.
func (c *SoftmaxClassifier) Evaluate(w *mat.VecDense, X mat.Matrix, y []int) (float64, *mat.VecDense, error) {
	if c.numClasses == 0 {
		return 0, nil, errors.NewNotSizedError(softmaxModelName, "Evaluate")
	}
	if err := c.checkTargets("SoftmaxClassifier.Evaluate", X, y); err != nil {
		return 0, nil, err
	}
	proba, err := c.probaWith(w, X, "SoftmaxClassifier.Evaluate")
	if err != nil {
		return 0, nil, err
	}
	return c.lossFromProba(w, X, y, proba), c.gradFromProba(w, X, y, proba), nil
}

// probaWith computes the row-stochastic probability matrix for the trial
// parameters w. Exponentiation is stabilized by shifting every score by the
// global maximum of the linear scores; the pivot class contributes
// exp(-maxScore) to each row.
func (c *SoftmaxClassifier) probaWith(w *mat.VecDense, X mat.Matrix, op string) (*mat.Dense, error) {
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return nil, errors.NewValueError(op, "empty feature matrix")
	}
	if w.Len() != d*(c.numClasses-1) {
		return nil, errors.NewDimensionError(op, d*(c.numClasses-1), w.Len(), 1)
	}

	wMat := c.weightMatrix(w, d)

	scores := mat.NewDense(n, c.numClasses-1, nil)
	scores.Mul(X, wMat)
	maxScore := mat.Max(scores)

	proba := mat.NewDense(n, c.numClasses, nil)
	pivot := math.Exp(-maxScore)
	for i := 0; i < n; i++ {
		sum := pivot
		for j := 0; j < c.numClasses-1; j++ {
			v := math.Exp(scores.At(i, j) - maxScore)
			proba.Set(i, j, v)
			sum += v
		}
		proba.Set(i, c.numClasses-1, pivot)
		for j := 0; j < c.numClasses; j++ {
			proba.Set(i, j, proba.At(i, j)/sum)
		}
	}
	return proba, nil
}

// lossFromProba computes the regularized negative log-likelihood from an
// already computed probability matrix.
func (c *SoftmaxClassifier) lossFromProba(w *mat.VecDense, X mat.Matrix, y []int, proba *mat.Dense) float64 {
	n, d := X.Dims()

	var nll float64
	for i := 0; i < n; i++ {
		nll -= math.Log(proba.At(i, y[i]))
	}
	nll /= float64(n)

	// ridge penalty, skipping the intercept row
	wMat := c.weightMatrix(w, d)
	var penalty float64
	for j := 1; j < d; j++ {
		for k := 0; k < c.numClasses-1; k++ {
			v := wMat.At(j, k)
			penalty += v * v
		}
	}
	return nll + 0.5*c.lambda*penalty
}

// gradFromProba computes the analytic loss gradient from an already
// computed probability matrix. With T the one-hot indicator over non-pivot
// classes and P' the probabilities without the pivot column, the gradient is
// -X^T (T - P') / n plus lambda times the non-intercept weights.
func (c *SoftmaxClassifier) gradFromProba(w *mat.VecDense, X mat.Matrix, y []int, proba *mat.Dense) *mat.VecDense {
	n, d := X.Dims()
	cols := c.numClasses - 1
	pivot := c.numClasses - 1

	diff := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			v := -proba.At(i, j)
			if y[i] != pivot && y[i] == j {
				v++
			}
			diff.Set(i, j, v)
		}
	}

	var grad mat.Dense
	grad.Mul(X.T(), diff)
	grad.Scale(-1/float64(n), &grad)

	wMat := c.weightMatrix(w, d)
	for j := 1; j < d; j++ {
		for k := 0; k < cols; k++ {
			grad.Set(j, k, grad.At(j, k)+c.lambda*wMat.At(j, k))
		}
	}

	flat := mat.NewVecDense(d*cols, nil)
	for j := 0; j < d; j++ {
		for k := 0; k < cols; k++ {
			flat.SetVec(j*cols+k, grad.At(j, k))
		}
	}
	return flat
}

// weightMatrix views the flat parameter vector as the d x (numClasses-1)
// row-major weight matrix it encodes.
func (c *SoftmaxClassifier) weightMatrix(w *mat.VecDense, numFeatures int) *mat.Dense {
	raw := w.RawVector()
	data := raw.Data
	if raw.Inc != 1 {
		data = make([]float64, w.Len())
		for i := range data {
			data[i] = w.AtVec(i)
		}
	}
	return mat.NewDense(numFeatures, c.numClasses-1, data)
}

// checkTargets validates the labels against the feature matrix and the
// established class count.
func (c *SoftmaxClassifier) checkTargets(op string, X mat.Matrix, y []int) error {
	n, _ := X.Dims()
	if len(y) != n {
		return errors.NewDimensionError(op, n, len(y), 0)
	}
	for i, label := range y {
		if label < 0 || label >= c.numClasses {
			return errors.NewValueError(op, fmt.Sprintf("label %d at row %d is outside [0, %d)", label, i, c.numClasses))
		}
	}
	return nil
}
