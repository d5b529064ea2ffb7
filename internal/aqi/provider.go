package aqi

import "context"

// Provider abstracts the external pollution data source. The monitored
// location is fixed at construction time, so Fetch takes no location.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (PollutantReading, error)
}

// Classifier is the narrow capability exposed by the pre-trained model:
// a feature vector in, a category label and a confidence in [0,1] out.
type Classifier interface {
	Predict(features FeatureVector) (label string, confidence float64, err error)
}

// LatestStore is the contract for caching the most recent assessment.
type LatestStore interface {
	Put(a Assessment)
	Latest() (Assessment, error)
}
