// Package doddle provides machine learning models for Go built on gonum,
// ported from the doddle-model library.
//
// The library centers on small, immutable estimator values: hyperparameters
// are fixed at construction, and training-related transitions such as
// setting the class count or the learned parameters return new values
// instead of mutating in place. This makes trained models safe to share
// between goroutines.
//
// # Packages
//
//   - linear: linear classification models, currently the multinomial
//     (softmax) classifier with L2 regularization
//   - optimize: first-order optimizers driving the training loop
//   - metrics: classification metrics (accuracy, log loss)
//   - preprocessing: feature matrix helpers such as bias-column insertion
//   - core/model: lifecycle states and estimator interfaces
//   - pkg/errors, pkg/log: structured errors, warnings and logging
//
// # Quick start
//
//	X, _ := preprocessing.AddBias(features)
//	clf, _ := linear.NewSoftmaxClassifierWithLambda(0.01)
//	trained, err := clf.Fit(X, labels)
//	if err != nil {
//	    // handle
//	}
//	labels, _ := trained.Predict(X)
package doddle
