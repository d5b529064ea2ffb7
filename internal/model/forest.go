package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/breatheaware/aqi-service/internal/aqi"
)

var (
	// ErrModelUnavailable is returned when the model artifact is missing or
	// corrupt. Loading happens once at startup; this error is fatal there.
	ErrModelUnavailable = errors.New("classification model unavailable")

	// ErrInferenceShape is returned when a feature vector does not match the
	// arity the loaded model was trained on.
	ErrInferenceShape = errors.New("feature vector shape mismatch")
)

// tree is one decision tree in scikit-learn's flat array layout: node i
// splits on Feature[i] at Threshold[i], descending to Left[i] or Right[i].
// Feature[i] == -1 marks a leaf whose Value[i] holds per-class sample counts.
type tree struct {
	Feature   []int       `json:"feature"`
	Threshold []float64   `json:"threshold"`
	Left      []int       `json:"left"`
	Right     []int       `json:"right"`
	Value     [][]float64 `json:"value"`
}

// artifact is the on-disk JSON export of the trained random forest.
type artifact struct {
	FeatureNames []string `json:"featureNames"`
	Classes      []string `json:"classes"`
	Trees        []tree   `json:"trees"`
}

// Forest is a pre-trained random-forest classifier. It is loaded once at
// startup and never mutated afterwards, so it is safe for concurrent use.
type Forest struct {
	featureNames []string
	classes      []string
	trees        []tree
}

// Load reads and validates the model artifact. Any failure wraps
// ErrModelUnavailable.
func Load(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return &Forest{
		featureNames: a.FeatureNames,
		classes:      a.Classes,
		trees:        a.Trees,
	}, nil
}

func (a *artifact) validate() error {
	if len(a.FeatureNames) == 0 {
		return errors.New("artifact has no feature names")
	}
	if len(a.Classes) < 2 {
		return errors.New("artifact has fewer than two classes")
	}
	if len(a.Trees) == 0 {
		return errors.New("artifact has no trees")
	}
	for ti, t := range a.Trees {
		n := len(t.Feature)
		if n == 0 || len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
			return fmt.Errorf("tree %d: inconsistent node arrays", ti)
		}
		for i := 0; i < n; i++ {
			if t.Feature[i] >= len(a.FeatureNames) {
				return fmt.Errorf("tree %d node %d: feature index out of range", ti, i)
			}
			if t.Feature[i] >= 0 {
				if t.Left[i] < 0 || t.Left[i] >= n || t.Right[i] < 0 || t.Right[i] >= n {
					return fmt.Errorf("tree %d node %d: child index out of range", ti, i)
				}
			} else if len(t.Value[i]) != len(a.Classes) {
				return fmt.Errorf("tree %d node %d: leaf value arity mismatch", ti, i)
			}
		}
	}
	return nil
}

// Arity returns the number of input features the model expects.
func (f *Forest) Arity() int {
	return len(f.featureNames)
}

// Predict walks every tree, averages the leaf class distributions, and
// returns the majority label with its probability.
func (f *Forest) Predict(features aqi.FeatureVector) (string, float64, error) {
	if len(features) != len(f.featureNames) {
		return "", 0, fmt.Errorf("%w: got %d features, model expects %d",
			ErrInferenceShape, len(features), len(f.featureNames))
	}

	probs := make([]float64, len(f.classes))
	for _, t := range f.trees {
		leaf := t.walk(features)
		var total float64
		for _, c := range leaf {
			total += c
		}
		if total == 0 {
			continue
		}
		for i, c := range leaf {
			probs[i] += c / total
		}
	}

	best := 0
	var sum float64
	for i, p := range probs {
		sum += p
		if p > probs[best] {
			best = i
		}
	}
	if sum == 0 {
		return "", 0, fmt.Errorf("%w: no tree produced a vote", ErrInferenceShape)
	}

	return f.classes[best], probs[best] / sum, nil
}

// walk descends from the root to a leaf and returns its class counts.
func (t *tree) walk(features aqi.FeatureVector) []float64 {
	node := 0
	for t.Feature[node] >= 0 {
		if features[t.Feature[node]] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}
	return t.Value[node]
}
