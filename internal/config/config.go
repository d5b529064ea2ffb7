package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// OpenWeatherAPIKey authorizes calls to the air pollution API. Live
	// endpoints fail per-request without it; /predict still works.
	OpenWeatherAPIKey string

	// Fixed coordinates of the monitored city.
	Latitude  float64
	Longitude float64

	// ModelPath points at the exported random-forest artifact.
	ModelPath string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// RefreshInterval controls the background refresh of the latest snapshot.
	RefreshInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
// The default coordinates are Hyderabad.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	cfg.Latitude = getenvFloat("AQI_LAT", 17.385)
	cfg.Longitude = getenvFloat("AQI_LON", 78.4867)

	cfg.ModelPath = getenvDefault("MODEL_PATH", "aqi_classification_model.json")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	intervalStr := getenvDefault("REFRESH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
