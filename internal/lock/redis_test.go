package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contestedLocker stays busy for a fixed number of attempts, then frees up.
type contestedLocker struct {
	busyFor  int
	attempts int
}

func (l *contestedLocker) Lock(context.Context, string, time.Duration) (bool, error) {
	l.attempts++
	return l.attempts > l.busyFor, nil
}

func (l *contestedLocker) Unlock(context.Context, string) error { return nil }

func TestAcquireSingleAttemptWithoutWait(t *testing.T) {
	locker := &contestedLocker{busyFor: 1}

	ok, err := Acquire(context.Background(), locker, "court:1", time.Second, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, locker.attempts)
}

func TestAcquireRetriesWithinWait(t *testing.T) {
	locker := &contestedLocker{busyFor: 2}

	ok, err := Acquire(context.Background(), locker, "court:1", time.Second, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, locker.attempts)
}

func TestAcquireGivesUpAfterWait(t *testing.T) {
	locker := &contestedLocker{busyFor: 100}

	ok, err := Acquire(context.Background(), locker, "court:1", time.Second, 150*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, locker.attempts, 1)
}

func TestAcquireStopsOnContextCancel(t *testing.T) {
	locker := &contestedLocker{busyFor: 100}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Acquire(ctx, locker, "court:1", time.Second, time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
