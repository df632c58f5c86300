package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a new cron scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// AddJob registers a job under a cron spec, e.g. "5 0 * * *"
func (s *Scheduler) AddJob(name string, spec string, fn func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		slog.Debug("Cron job starting", "name", name)

		if err := fn(context.Background()); err != nil {
			slog.Error("Cron job failed", "name", name, "error", err, "duration", time.Since(start))
		} else {
			slog.Debug("Cron job completed", "name", name, "duration", time.Since(start))
		}
	})
	if err != nil {
		return err
	}

	slog.Info("Cron job registered", "name", name, "spec", spec)
	return nil
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Cron scheduler started", "job_count", len(s.cron.Entries()))
}

// Stop gracefully stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Cron scheduler stopped")
}
