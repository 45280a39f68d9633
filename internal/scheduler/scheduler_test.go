package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/courtline/CourtBookingService/internal/usecase/sweep_statuses"
)

type fakeSweeper struct {
	calls int32
	err   error
}

func (f *fakeSweeper) Execute(context.Context) (*sweep_statuses.Result, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return &sweep_statuses.Result{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSchedulerSweepsOnInterval(t *testing.T) {
	sweeper := &fakeSweeper{}
	s := New(sweeper, 10*time.Millisecond, "test", nil, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	s.Run(ctx)

	// Immediate sweep plus at least a few ticks.
	assert.GreaterOrEqual(t, atomic.LoadInt32(&sweeper.calls), int32(3))
}

func TestSchedulerKeepsRunningAfterFailure(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("db down")}
	s := New(sweeper, 10*time.Millisecond, "test", nil, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()

	s.Run(ctx)

	assert.GreaterOrEqual(t, atomic.LoadInt32(&sweeper.calls), int32(2))
}
