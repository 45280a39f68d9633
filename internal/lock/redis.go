package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker is a best-effort mutex keyed by court. It is a second fence in
// front of the serializable booking transaction, not the primary
// consistency guarantee.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// RedisLock implements Locker with Redis SET NX.
type RedisLock struct {
	client *redis.Client
}

// NewRedisLock connects to Redis and verifies the connection.
func NewRedisLock(addr string) (*RedisLock, error) {
	const op = "lock.NewRedisLock"

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisLock{client: client}, nil
}

// CourtKey builds the lock key for a court.
func CourtKey(courtID int64) string {
	return fmt.Sprintf("court:%d", courtID)
}

// Lock tries to take the lock, returning false when it is held elsewhere.
func (r *RedisLock) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const op = "lock.RedisLock.Lock"

	ok, err := r.client.SetNX(ctx, "lock:"+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

// Unlock releases the lock.
func (r *RedisLock) Unlock(ctx context.Context, key string) error {
	const op = "lock.RedisLock.Unlock"

	if err := r.client.Del(ctx, "lock:"+key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (r *RedisLock) Close() error {
	return r.client.Close()
}

// acquirePollInterval is how often a busy lock is retried during the
// wait window.
const acquirePollInterval = 100 * time.Millisecond

// Acquire takes the lock, polling a busy lock until wait elapses. With
// wait <= 0 it makes a single attempt.
func Acquire(ctx context.Context, l Locker, key string, ttl, wait time.Duration) (bool, error) {
	deadline := time.Now().Add(wait)
	for {
		ok, err := l.Lock(ctx, key, ttl)
		if err != nil || ok {
			return ok, err
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(acquirePollInterval):
		}
	}
}

// NopLocker is used when Redis is disabled: every Lock succeeds.
type NopLocker struct{}

func (NopLocker) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (NopLocker) Unlock(ctx context.Context, key string) error {
	return nil
}
