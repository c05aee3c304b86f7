package model

import (
	"gonum.org/v1/gonum/mat"
)

// Predictor is the interface for trained models that can predict labels.
type Predictor interface {
	// Predict returns the predicted class index for each row of X.
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// ProbabilisticClassifier is the interface for classifiers that expose
// per-class probability estimates alongside hard predictions.
type ProbabilisticClassifier interface {
	Predictor

	// PredictProba returns a row-stochastic matrix of class probabilities,
	// one row per sample and one column per class.
	PredictProba(X mat.Matrix) (*mat.Dense, error)
}
