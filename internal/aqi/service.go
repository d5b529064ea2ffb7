package aqi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// Service orchestrates the assessment pipeline: provider fetch, feature
// normalization, model inference, advisory lookup.
type Service struct {
	provider   Provider
	classifier Classifier
	store      LatestStore
}

// NewService creates a new Service.
func NewService(provider Provider, classifier Classifier, store LatestStore) *Service {
	return &Service{
		provider:   provider,
		classifier: classifier,
		store:      store,
	}
}

// Assess fetches the current pollutant reading for the configured city and
// runs it through the pipeline. The provider is tried exactly once; any
// fetch failure surfaces as ErrProviderUnavailable.
func (s *Service) Assess(ctx context.Context) (Assessment, error) {
	reading, err := s.provider.Fetch(ctx)
	if err != nil {
		if errors.Is(err, ErrInvalidReading) {
			return Assessment{}, err
		}
		return Assessment{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return s.AssessReading(reading)
}

// AssessReading runs the pipeline on a caller-supplied reading. Pure and
// deterministic: identical readings yield identical assessments.
func (s *Service) AssessReading(reading PollutantReading) (Assessment, error) {
	features, err := Normalize(reading)
	if err != nil {
		return Assessment{}, err
	}

	label, confidence, err := s.classifier.Predict(features)
	if err != nil {
		return Assessment{}, err
	}

	category := Category(label)
	adv, err := Resolve(category)
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		Category:   category,
		AQIValue:   MidpointValue(category),
		Confidence: confidence,
		ColorCode:  adv.ColorCode,
		Emoji:      adv.Emoji,
		Range:      adv.Range,
		HealthTip:  adv.HealthTip,
		Pollutants: features.Reading(),
		Timestamp:  time.Now().UTC(),
	}, nil
}

// Refresh runs a live assessment and caches it as the latest snapshot.
// A failed refresh keeps the previous snapshot in place.
func (s *Service) Refresh(ctx context.Context) error {
	assessment, err := s.Assess(ctx)
	if err != nil {
		log.Printf("refresh: assessment failed for %s: %v", s.provider.Name(), err)
		return err
	}
	s.store.Put(assessment)
	return nil
}

// Latest delegates to the underlying store.
func (s *Service) Latest() (Assessment, error) {
	return s.store.Latest()
}
