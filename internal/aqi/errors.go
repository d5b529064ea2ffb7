package aqi

import "errors"

var (
	// ErrProviderUnavailable is returned when the live data provider cannot
	// be reached, times out, or answers with a non-2xx status.
	ErrProviderUnavailable = errors.New("pollution data provider unavailable")

	// ErrInvalidReading is returned for pollutant values outside the valid
	// domain (negative, NaN, Inf) or a malformed provider payload.
	ErrInvalidReading = errors.New("invalid pollutant reading")

	// ErrUnknownCategory is returned when the classifier emits a label
	// outside the known category set. Should not occur with a well-formed
	// model artifact.
	ErrUnknownCategory = errors.New("unknown AQI category")
)
