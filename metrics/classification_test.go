package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{0, 1, 2, 1})
	yPred := mat.NewVecDense(4, []float64{0, 1, 1, 1})

	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestAccuracy_Validation(t *testing.T) {
	if _, err := Accuracy(mat.NewVecDense(1, nil), mat.NewVecDense(2, nil)); err == nil {
		t.Error("length mismatch should be rejected")
	}
}

func TestLogLoss_PerfectAndUniform(t *testing.T) {
	// perfectly confident correct predictions: loss limited only by the clamp
	perfect := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
	loss, err := LogLoss([]int{0, 1}, perfect)
	if err != nil {
		t.Fatalf("LogLoss failed: %v", err)
	}
	if loss > 1e-12 {
		t.Errorf("log loss for perfect predictions = %v, want ~0", loss)
	}

	// uniform predictions over 2 classes give exactly log(2)
	uniform := mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		0.5, 0.5,
	})
	loss, err = LogLoss([]int{0, 1}, uniform)
	if err != nil {
		t.Fatalf("LogLoss failed: %v", err)
	}
	if math.Abs(loss-math.Log(2)) > 1e-12 {
		t.Errorf("log loss for uniform predictions = %v, want ln 2", loss)
	}
}

func TestLogLoss_ConfidentMistakeStaysFinite(t *testing.T) {
	proba := mat.NewDense(1, 2, []float64{1, 0})
	loss, err := LogLoss([]int{1}, proba)
	if err != nil {
		t.Fatalf("LogLoss failed: %v", err)
	}
	if math.IsInf(loss, 0) || math.IsNaN(loss) {
		t.Errorf("log loss must stay finite under the clamp, got %v", loss)
	}
}

func TestLogLoss_Validation(t *testing.T) {
	proba := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})

	if _, err := LogLoss([]int{0}, proba); err == nil {
		t.Error("label count mismatch should be rejected")
	}
	if _, err := LogLoss([]int{0, 2}, proba); err == nil {
		t.Error("label outside matrix columns should be rejected")
	}
}
