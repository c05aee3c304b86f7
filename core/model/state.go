// Package model provides lifecycle state and common interfaces for
// doddle-model estimators.
package model

// State identifies where a model value sits in its lifecycle. Models are
// immutable: every transition produces a new value in the next state, so a
// given value never changes state after construction.
type State int

const (
	// Untrained means only the hyperparameters are fixed; the number of
	// target classes is not yet known.
	Untrained State = iota
	// Sized means the number of target classes is fixed but the model has
	// no parameters yet. Loss and gradient computation is valid in this
	// state; prediction is not.
	Sized
	// Trained means both the class count and the parameters are fixed.
	Trained
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Untrained:
		return "Untrained"
	case Sized:
		return "Sized"
	case Trained:
		return "Trained"
	default:
		return "Unknown"
	}
}
