package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/breatheaware/aqi-service/internal/aqi"
)

// Scheduler periodically refreshes the cached latest assessment so the
// /latest endpoint can answer without touching the provider.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *aqi.Service
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service *aqi.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
// The first run happens immediately so the cache warms up at boot.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().StartImmediately().Do(func() {
		log.Println("scheduler: refreshing latest assessment")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.service.Refresh(ctx); err != nil {
			log.Printf("scheduler: refresh failed: %v", err)
			return
		}
		log.Println("scheduler: latest assessment refreshed")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
