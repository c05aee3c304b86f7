package errors

import (
	"strings"
	"testing"
)

func TestWarn_CustomHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	warning := NewTwoClassWarning("SoftmaxClassifier")
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "logistic regression") {
		t.Errorf("unexpected warning message: %v", captured)
	}
}

func TestWarn_ZerologSinkTakesPrecedence(t *testing.T) {
	handlerCalled := false
	SetWarningHandler(func(w error) {
		handlerCalled = true
	})
	defer SetWarningHandler(nil)

	var sinkGot error
	SetZerologWarnFunc(func(w error) {
		sinkGot = w
	})
	defer SetZerologWarnFunc(nil)

	Warn(NewConvergenceWarning("GradientDescent", 100, ""))

	if sinkGot == nil {
		t.Fatal("zerolog sink was not invoked")
	}
	if handlerCalled {
		t.Error("fallback handler should not run when a zerolog sink is installed")
	}
}

func TestNotSizedError_Message(t *testing.T) {
	err := NewNotSizedError("SoftmaxClassifier", "PredictProba")

	var nse *NotSizedError
	if !As(err, &nse) {
		t.Fatalf("expected NotSizedError, got %T", err)
	}
	if !strings.Contains(err.Error(), "WithClassCount") {
		t.Errorf("message should point at WithClassCount: %v", err)
	}
}

func TestValidationError_Fields(t *testing.T) {
	err := NewValidationError("lambda", "must be positive", -1.0)

	var ve *ValidationError
	if !As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.ParamName != "lambda" {
		t.Errorf("ParamName = %q, want %q", ve.ParamName, "lambda")
	}
	if ve.Value != -1.0 {
		t.Errorf("Value = %v, want -1.0", ve.Value)
	}
}

func TestConvergenceWarning_DefaultMessage(t *testing.T) {
	w := NewConvergenceWarning("GradientDescent", 500, "")
	if !strings.Contains(w.Error(), "500 iterations") {
		t.Errorf("unexpected message: %v", w)
	}
}

func TestDimensionError_AxisNames(t *testing.T) {
	rowErr := NewDimensionError("SoftmaxClassifier.Loss", 4, 3, 0)
	if !strings.Contains(rowErr.Error(), "rows") {
		t.Errorf("axis 0 should report rows: %v", rowErr)
	}

	colErr := NewDimensionError("SoftmaxClassifier.Loss", 2, 5, 1)
	if !strings.Contains(colErr.Error(), "features") {
		t.Errorf("axis 1 should report features: %v", colErr)
	}
}

func TestWrap_PreservesType(t *testing.T) {
	base := NewNotFittedError("SoftmaxClassifier", "Predict")
	wrapped := Wrap(base, "prediction failed")

	var nfe *NotFittedError
	if !As(wrapped, &nfe) {
		t.Error("wrapping should preserve the underlying error type")
	}
}
