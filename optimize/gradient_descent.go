// Package optimize provides the first-order optimizers used to train
// doddle-model estimators.
package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/toxicafunk/doddle-model/pkg/errors"
)

// Objective evaluates a differentiable function at w, returning its value
// and gradient together. Implementations must not retain or mutate w.
type Objective func(w *mat.VecDense) (float64, *mat.VecDense, error)

// GradientDescent is a batch gradient-descent minimizer with a decaying
// step size. It stops when the infinity norm of the gradient drops below
// the tolerance, or when the iteration budget is exhausted, in which case
// it emits a ConvergenceWarning and returns the last iterate.
type GradientDescent struct {
	stepSize float64 // initial step size
	maxIter  int
	tol      float64
}

// Option configures a GradientDescent.
type Option func(*GradientDescent)

// WithStepSize sets the initial step size.
func WithStepSize(stepSize float64) Option {
	return func(gd *GradientDescent) {
		gd.stepSize = stepSize
	}
}

// WithMaxIter sets the maximum number of iterations.
func WithMaxIter(maxIter int) Option {
	return func(gd *GradientDescent) {
		gd.maxIter = maxIter
	}
}

// WithTol sets the gradient-norm tolerance for convergence.
func WithTol(tol float64) Option {
	return func(gd *GradientDescent) {
		gd.tol = tol
	}
}

// NewGradientDescent creates a GradientDescent with the given options.
func NewGradientDescent(opts ...Option) *GradientDescent {
	gd := &GradientDescent{
		stepSize: 1.0,
		maxIter:  1000,
		tol:      1e-6,
	}
	for _, opt := range opts {
		opt(gd)
	}
	return gd
}

// Minimize runs gradient descent on obj starting from init and returns the
// final parameters and the number of iterations executed. init is not
// modified.
func (gd *GradientDescent) Minimize(obj Objective, init *mat.VecDense) (*mat.VecDense, int, error) {
	w := mat.VecDenseCopyOf(init)

	for iter := 0; iter < gd.maxIter; iter++ {
		_, grad, err := obj(w)
		if err != nil {
			return nil, iter, err
		}

		maxGrad := 0.0
		for i := 0; i < grad.Len(); i++ {
			if g := math.Abs(grad.AtVec(i)); g > maxGrad {
				maxGrad = g
			}
		}
		if maxGrad < gd.tol {
			return w, iter, nil
		}

		// decaying step keeps the early iterations aggressive without
		// oscillating near the optimum
		step := gd.stepSize / (1.0 + 0.1*float64(iter))
		w.AddScaledVec(w, -step, grad)
	}

	errors.Warn(errors.NewConvergenceWarning("GradientDescent", gd.maxIter, ""))
	return w, gd.maxIter, nil
}
