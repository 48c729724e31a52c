package usecase

import (
	"context"
	"time"

	"HistoryScanner/internal/ports"
)

// DigestScheduler wires the clock driver with the digest use case.
type DigestScheduler struct {
	driver ports.Scheduler
	digest *Digest
}

// NewDigestScheduler returns a helper to start/stop the recurring job.
func NewDigestScheduler(driver ports.Scheduler, digest *Digest) *DigestScheduler {
	return &DigestScheduler{driver: driver, digest: digest}
}

// Start registers the digest job with the provided scheduler.
func (s *DigestScheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.digest == nil {
		return nil
	}

	job := func(trigger time.Time) {
		_ = s.digest.Publish(ctx, trigger)
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *DigestScheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
