package usecase

import (
	"context"
	"log/slog"
	"time"

	"NarrativeScanner/internal/ports"
)

// Scheduler wires the interval driver with the pipeline use case.
type Scheduler struct {
	driver   ports.Scheduler
	pipeline *Pipeline
	opts     RunOptions
	logger   *slog.Logger
}

// NewScheduler returns a helper to start/stop recurring runs.
func NewScheduler(driver ports.Scheduler, pipeline *Pipeline, opts RunOptions, logger *slog.Logger) *Scheduler {
	return &Scheduler{driver: driver, pipeline: pipeline, opts: opts, logger: logger}
}

// Start registers the pipeline with the provided scheduler. Failed runs are
// logged and the next tick still fires.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.pipeline == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if _, err := s.pipeline.Run(ctx, s.opts); err != nil && s.logger != nil {
			s.logger.Error("scheduled run failed", "trigger", trigger.Format(time.RFC3339), "error", err)
		}
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
