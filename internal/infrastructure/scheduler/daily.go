// Package scheduler triggers the digest job once per day at a fixed
// local time.
package scheduler

import (
	"context"
	"time"

	"HistoryScanner/internal/ports"
)

// DailyScheduler fires the job every day at the configured hour and
// minute, computing the next run from wall-clock time so drift does not
// accumulate.
type DailyScheduler struct {
	hour   int
	minute int
	now    func() time.Time
	stop   chan struct{}
}

var _ ports.Scheduler = (*DailyScheduler)(nil)

// NewDailyScheduler builds a scheduler firing at hour:minute local time.
func NewDailyScheduler(hour, minute int) *DailyScheduler {
	return &DailyScheduler{hour: hour, minute: minute, now: time.Now}
}

// Start launches the scheduling goroutine. Calling Start on a running
// scheduler is a no-op.
func (s *DailyScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}
	if s.stop != nil {
		return nil
	}

	s.stop = make(chan struct{})
	go func() {
		for {
			wait := time.Until(s.nextRun(s.now()))
			timer := time.NewTimer(wait)
			select {
			case t := <-timer.C:
				job(t)
			case <-ctx.Done():
				timer.Stop()
				return
			case <-s.stop:
				timer.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop halts the scheduling goroutine.
func (s *DailyScheduler) Stop(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	s.stop = nil
	return nil
}

// nextRun returns the next hour:minute occurrence strictly after t.
func (s *DailyScheduler) nextRun(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), s.hour, s.minute, 0, 0, t.Location())
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
