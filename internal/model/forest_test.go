package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/breatheaware/aqi-service/internal/aqi"
)

// testArtifact is a two-tree forest over the six pollutant features with two
// classes. Both trees split on pm25 only, so predictions are easy to reason
// about by hand.
const testArtifact = `{
	"featureNames": ["pm25", "pm10", "no2", "so2", "co", "o3"],
	"classes": ["Good", "Moderate"],
	"trees": [
		{
			"feature": [0, -1, -1],
			"threshold": [30, 0, 0],
			"left": [1, -1, -1],
			"right": [2, -1, -1],
			"value": [[], [8, 2], [1, 9]]
		},
		{
			"feature": [0, -1, -1],
			"threshold": [50, 0, 0],
			"left": [1, -1, -1],
			"right": [2, -1, -1],
			"value": [[], [7, 3], [2, 8]]
		}
	]
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

func TestLoadAndPredict(t *testing.T) {
	forest, err := Load(writeArtifact(t, testArtifact))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if forest.Arity() != aqi.FeatureCount {
		t.Fatalf("expected arity %d, got %d", aqi.FeatureCount, forest.Arity())
	}

	// pm25 below both thresholds: both trees vote Good (0.8 and 0.7).
	label, confidence, err := forest.Predict(aqi.FeatureVector{10, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Good" {
		t.Errorf("expected label Good, got %q", label)
	}
	if confidence != 0.75 {
		t.Errorf("expected confidence 0.75, got %v", confidence)
	}

	// pm25 above both thresholds: both trees vote Moderate (0.9 and 0.8).
	label, confidence, err = forest.Predict(aqi.FeatureVector{60, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Moderate" {
		t.Errorf("expected label Moderate, got %q", label)
	}
	if confidence <= 0 || confidence > 1 {
		t.Errorf("confidence out of range: %v", confidence)
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	forest, err := Load(writeArtifact(t, testArtifact))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	features := aqi.FeatureVector{42, 18, 9, 3, 700, 25}
	l1, c1, err := forest.Predict(features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l2, c2, err := forest.Predict(features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l1 != l2 || c1 != c2 {
		t.Fatalf("predictions differ: (%q, %v) vs (%q, %v)", l1, c1, l2, c2)
	}
}

func TestPredictShapeMismatch(t *testing.T) {
	forest, err := Load(writeArtifact(t, testArtifact))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := forest.Predict(aqi.FeatureVector{1, 2, 3}); !errors.Is(err, ErrInferenceShape) {
		t.Fatalf("expected ErrInferenceShape, got %v", err)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestLoadRejectsCorruptArtifacts(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "random forest goes here"},
		{"no trees", `{"featureNames": ["pm25"], "classes": ["Good", "Moderate"], "trees": []}`},
		{"one class", `{"featureNames": ["pm25"], "classes": ["Good"], "trees": [{"feature": [-1], "threshold": [0], "left": [-1], "right": [-1], "value": [[1]]}]}`},
		{"leaf arity mismatch", `{"featureNames": ["pm25"], "classes": ["Good", "Moderate"], "trees": [{"feature": [-1], "threshold": [0], "left": [-1], "right": [-1], "value": [[1]]}]}`},
		{"child out of range", `{"featureNames": ["pm25"], "classes": ["Good", "Moderate"], "trees": [{"feature": [0], "threshold": [5], "left": [7], "right": [1], "value": [[]]}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeArtifact(t, tc.content)); !errors.Is(err, ErrModelUnavailable) {
				t.Fatalf("expected ErrModelUnavailable, got %v", err)
			}
		})
	}
}
