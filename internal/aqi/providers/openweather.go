package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/breatheaware/aqi-service/internal/aqi"
	"github.com/sony/gobreaker"
)

// OpenWeatherProvider implements the aqi.Provider interface on top of the
// OpenWeatherMap Air Pollution API for one fixed coordinate pair.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	lat     float64
	lon     float64
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, lat, lon float64) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather-air-pollution",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/air_pollution",
		lat:     lat,
		lon:     lon,
		httpCfg: HTTPClientConfig{Client: client},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context) (aqi.PollutantReading, error) {
	if p.apiKey == "" {
		return aqi.PollutantReading{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", p.lat))
		values.Set("lon", fmt.Sprintf("%f", p.lon))
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return aqi.PollutantReading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			Components struct {
				CO   float64 `json:"co"`
				NO2  float64 `json:"no2"`
				O3   float64 `json:"o3"`
				SO2  float64 `json:"so2"`
				PM25 float64 `json:"pm2_5"`
				PM10 float64 `json:"pm10"`
			} `json:"components"`
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return aqi.PollutantReading{}, fmt.Errorf("%w: %v", aqi.ErrInvalidReading, err)
	}

	if len(payload.List) == 0 {
		return aqi.PollutantReading{}, fmt.Errorf("%w: empty air pollution list", aqi.ErrInvalidReading)
	}

	c := payload.List[0].Components
	return aqi.PollutantReading{
		PM25: c.PM25,
		PM10: c.PM10,
		NO2:  c.NO2,
		SO2:  c.SO2,
		CO:   c.CO,
		O3:   c.O3,
	}, nil
}
