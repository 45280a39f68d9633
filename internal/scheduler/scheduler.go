package scheduler

import (
	"context"
	"time"

	"github.com/courtline/CourtBookingService/internal/usecase/sweep_statuses"
)

// Sweeper runs one status sweep.
type Sweeper interface {
	Execute(ctx context.Context) (*sweep_statuses.Result, error)
}

// SweepObserver records sweep outcomes (prometheus in production).
type SweepObserver interface {
	ObserveSweep(serviceName string, err error, started, completed int64, duration time.Duration)
}

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler invokes the status sweep on a fixed interval. A failed run
// is logged and retried on the next tick; the sweep recomputes from
// current state each run, so nothing is lost.
type Scheduler struct {
	sweeper     Sweeper
	interval    time.Duration
	serviceName string
	observer    SweepObserver
	logger      Logger
}

// New creates the sweep scheduler. observer may be nil when metrics are
// disabled.
func New(sweeper Sweeper, interval time.Duration, serviceName string, observer SweepObserver, logger Logger) *Scheduler {
	return &Scheduler{
		sweeper:     sweeper,
		interval:    interval,
		serviceName: serviceName,
		observer:    observer,
		logger:      logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. The
// first sweep fires immediately so a restart does not leave stale
// statuses sitting for a full interval.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Scheduler: status sweep every %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler: stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	startedAt := time.Now()

	result, err := s.sweeper.Execute(ctx)
	if err != nil {
		s.logger.Error("Scheduler: sweep failed, will retry next tick: %v", err)
		if s.observer != nil {
			s.observer.ObserveSweep(s.serviceName, err, 0, 0, time.Since(startedAt))
		}
		return
	}

	if s.observer != nil {
		s.observer.ObserveSweep(s.serviceName, nil, result.Started, result.Completed, time.Since(startedAt))
	}
}
