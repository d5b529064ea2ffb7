package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/breatheaware/aqi-service/internal/aqi"
)

const airPollutionPayload = `{
	"coord": {"lon": 78.4867, "lat": 17.385},
	"list": [{
		"main": {"aqi": 3},
		"components": {
			"co": 453.95, "no": 0.25, "no2": 12.68, "o3": 68.67,
			"so2": 5.13, "pm2_5": 41.2, "pm10": 63.4, "nh3": 2.11
		},
		"dt": 1717228800
	}]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*OpenWeatherProvider, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewOpenWeatherProvider(srv.Client(), "test-key", 17.385, 78.4867)
	p.baseURL = srv.URL
	return p, srv
}

func TestFetchParsesComponents(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "test-key" {
			t.Errorf("expected appid query parameter, got %q", r.URL.Query().Get("appid"))
		}
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
			t.Error("expected lat/lon query parameters")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(airPollutionPayload))
	})

	reading, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := aqi.PollutantReading{PM25: 41.2, PM10: 63.4, NO2: 12.68, SO2: 5.13, CO: 453.95, O3: 68.67}
	if reading != want {
		t.Fatalf("expected %+v, got %+v", want, reading)
	}
}

func TestFetchRequiresAPIKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "", 17.385, 78.4867)
	if _, err := p.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestFetchServerError(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := p.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for 5xx response")
	}
}

func TestFetchEmptyList(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list": []}`))
	})

	_, err := p.Fetch(context.Background())
	if !errors.Is(err, aqi.ErrInvalidReading) {
		t.Fatalf("expected ErrInvalidReading, got %v", err)
	}
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(airPollutionPayload))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Fetch(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
