package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/hemant838/goquant-assignment/internal/latency"
)

// Scheduler periodically re-resolves the full connection set and swaps
// it into the store. The core stays pull-based; the timer lives here.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *latency.Service
	store     latency.Store
	opts      latency.ResolveOptions
	interval  time.Duration
}

// New creates a new Scheduler.
func New(service *latency.Service, store latency.Store, opts latency.ResolveOptions, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		store:     store,
		opts:      opts,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// An immediate first run populates the store before the first tick.
func (s *Scheduler) Start() error {
	seconds := int(s.interval.Seconds())
	if seconds <= 0 {
		seconds = 10
	}

	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snapshot := s.service.ResolveAll(ctx, s.opts)
		s.store.Replace(snapshot)
		log.Printf("scheduler: resolved %d connections", len(snapshot.Connections))
	}

	_, err := s.scheduler.Every(seconds).Seconds().StartImmediately().Do(job)
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
