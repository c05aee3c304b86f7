package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/toxicafunk/doddle-model/pkg/errors"
)

func TestUseZerologWarnings_StructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	UseZerologWarnings(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewTwoClassWarning("SoftmaxClassifier"))

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("warning output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	if record["level"] != "warn" {
		t.Errorf("level = %v, want warn", record["level"])
	}

	warning, ok := record["warning"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing structured warning object: %s", buf.String())
	}
	if warning["type"] != "TwoClassWarning" {
		t.Errorf("warning type = %v, want TwoClassWarning", warning["type"])
	}
	if warning["model_name"] != "SoftmaxClassifier" {
		t.Errorf("model_name = %v, want SoftmaxClassifier", warning["model_name"])
	}
}
