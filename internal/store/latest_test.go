package store

import (
	"errors"
	"testing"

	"github.com/breatheaware/aqi-service/internal/aqi"
)

func TestLatestCacheEmpty(t *testing.T) {
	cache := NewLatestCache()
	if _, err := cache.Latest(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestLatestCacheKeepsOnlyNewest(t *testing.T) {
	cache := NewLatestCache()

	cache.Put(aqi.Assessment{Category: aqi.CategoryGood})
	cache.Put(aqi.Assessment{Category: aqi.CategoryHazardous})

	latest, err := cache.Latest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.Category != aqi.CategoryHazardous {
		t.Fatalf("expected newest assessment, got %q", latest.Category)
	}
}
