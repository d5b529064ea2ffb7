package aqi

import "fmt"

// Advisory carries the display and health guidance data for one category.
type Advisory struct {
	Emoji     string
	ColorCode string
	Range     string
	HealthTip string
}

var advisories = map[Category]Advisory{
	CategoryGood: {
		Emoji:     "🟢",
		ColorCode: "#00E400",
		Range:     "0-50",
		HealthTip: "Air quality is excellent! Perfect for outdoor activities and exercise. 🏃‍♀️",
	},
	CategoryModerate: {
		Emoji:     "🟡",
		ColorCode: "#FFFF00",
		Range:     "51-100",
		HealthTip: "Air quality is acceptable. Sensitive individuals should consider limiting prolonged outdoor exertion. 🚶‍♂️",
	},
	CategorySensitive: {
		Emoji:     "🟠",
		ColorCode: "#FF7E00",
		Range:     "101-150",
		HealthTip: "Sensitive groups should reduce outdoor activities. Children and elderly should stay indoors. 🏠",
	},
	CategoryUnhealthy: {
		Emoji:     "🔴",
		ColorCode: "#FF0000",
		Range:     "151-200",
		HealthTip: "Everyone should limit outdoor activities. Wear masks when going outside. 😷",
	},
	CategoryVeryUnhealthy: {
		Emoji:     "🟣",
		ColorCode: "#8F3F97",
		Range:     "201-300",
		HealthTip: "Health alert! Avoid outdoor activities. Keep windows closed and use air purifiers. ⚠️",
	},
	CategoryHazardous: {
		Emoji:     "🟤",
		ColorCode: "#7E0023",
		Range:     "301+",
		HealthTip: "Emergency conditions! Stay indoors at all times. Seek medical attention if needed. 🚨",
	},
}

// midpoints approximate a numerical AQI value from the category by taking
// the midpoint of its range.
var midpoints = map[Category]int{
	CategoryGood:          25,
	CategoryModerate:      75,
	CategorySensitive:     125,
	CategoryUnhealthy:     175,
	CategoryVeryUnhealthy: 250,
	CategoryHazardous:     350,
}

// Resolve returns the advisory data for a category. Every category in the
// enumeration has an entry; anything else is rejected.
func Resolve(c Category) (Advisory, error) {
	adv, ok := advisories[c]
	if !ok {
		return Advisory{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return adv, nil
}

// MidpointValue converts a category to its approximate numerical AQI value.
func MidpointValue(c Category) int {
	if v, ok := midpoints[c]; ok {
		return v
	}
	return 100
}
