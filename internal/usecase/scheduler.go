package usecase

import (
	"context"
	"log/slog"
	"time"

	"AllianceSite/internal/ports"
)

// Reprober periodically discards the memoized CMS availability and probes again.
type Reprober struct {
	driver  ports.Scheduler
	checker ports.AvailabilityChecker
	logger  *slog.Logger
}

// NewReprober returns a helper to start/stop the recurring probe.
func NewReprober(driver ports.Scheduler, checker ports.AvailabilityChecker, logger *slog.Logger) *Reprober {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reprober{driver: driver, checker: checker, logger: logger}
}

// Start registers the probe job with the scheduler.
func (r *Reprober) Start(ctx context.Context) error {
	if r.driver == nil || r.checker == nil {
		return nil
	}

	job := func(trigger time.Time) {
		available := r.checker.Reprobe(ctx)
		r.logger.Info("wordpress availability re-checked", "available", available, "at", trigger.Format(time.RFC3339))
	}

	return r.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (r *Reprober) Stop(ctx context.Context) error {
	if r.driver == nil {
		return nil
	}

	return r.driver.Stop(ctx)
}
