package aqi

import (
	"time"
)

// Category represents an AQI severity class as emitted by the classifier.
type Category string

const (
	CategoryGood          Category = "Good"
	CategoryModerate      Category = "Moderate"
	CategorySensitive     Category = "Unhealthy for Sensitive Groups"
	CategoryUnhealthy     Category = "Unhealthy"
	CategoryVeryUnhealthy Category = "Very Unhealthy"
	CategoryHazardous     Category = "Hazardous"
)

// Categories lists every known class in increasing severity order.
var Categories = []Category{
	CategoryGood,
	CategoryModerate,
	CategorySensitive,
	CategoryUnhealthy,
	CategoryVeryUnhealthy,
	CategoryHazardous,
}

// PollutantReading holds raw pollutant concentrations for a single moment.
// Units follow the provider convention (µg/m³ for everything OpenWeatherMap
// returns).
type PollutantReading struct {
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	CO   float64 `json:"co"`
	O3   float64 `json:"o3"`
}

// FeatureVector is the corrected pollutant sequence fed to the classifier,
// ordered as pm25, pm10, no2, so2, co, o3.
type FeatureVector []float64

// FeatureCount is the arity the classification model expects.
const FeatureCount = 6

// Reading converts the vector back into the named pollutant form, used when
// echoing normalized values in responses.
func (v FeatureVector) Reading() PollutantReading {
	if len(v) != FeatureCount {
		return PollutantReading{}
	}
	return PollutantReading{
		PM25: v[0],
		PM10: v[1],
		NO2:  v[2],
		SO2:  v[3],
		CO:   v[4],
		O3:   v[5],
	}
}

// Assessment is the combined result returned to the caller: the predicted
// category with its advisory data and the normalized pollutant values used
// for the prediction.
type Assessment struct {
	Category   Category         `json:"category"`
	AQIValue   int              `json:"aqiValue"`
	Confidence float64          `json:"confidence"` // in [0,1]
	ColorCode  string           `json:"colorCode"`
	Emoji      string           `json:"emoji"`
	Range      string           `json:"range"`
	HealthTip  string           `json:"healthTip"`
	Pollutants PollutantReading `json:"pollutants"`
	Timestamp  time.Time        `json:"timestamp"` // always UTC
}
