package aqi

import (
	"fmt"
	"math"
)

// correction holds the empirical scale/offset applied to one pollutant to
// align provider readings with local ground-level measurements. The values
// are tuning constants, not derived from a documented calibration.
type correction struct {
	scale  float64
	offset float64
}

// corrections is ordered the same way as the model's feature schema:
// pm25, pm10, no2, so2, co, o3.
var corrections = [FeatureCount]correction{
	{scale: 0.92, offset: 3.1}, // pm25
	{scale: 0.88, offset: 5.4}, // pm10
	{scale: 1.08, offset: 0.9}, // no2
	{scale: 1.15, offset: 0.2}, // so2
	{scale: 0.85, offset: 0.0}, // co
	{scale: 1.02, offset: 0.6}, // o3
}

// Normalize applies the fixed per-pollutant corrections and returns the
// feature vector in the order the classifier expects. It is a pure function;
// the only failure mode is an out-of-domain input value.
func Normalize(r PollutantReading) (FeatureVector, error) {
	raw := [FeatureCount]float64{r.PM25, r.PM10, r.NO2, r.SO2, r.CO, r.O3}
	names := [FeatureCount]string{"pm25", "pm10", "no2", "so2", "co", "o3"}

	features := make(FeatureVector, FeatureCount)
	for i, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidReading, names[i], v)
		}
		features[i] = corrections[i].scale*v + corrections[i].offset
	}
	return features, nil
}
