// Package lock provides distributed locks backed by Redis.
package lock

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultExpiry = 5 * time.Second
	defaultTries  = 8
)

// RedisLocker hands out redsync mutexes.
type RedisLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
	tries  int
}

// NewRedisLocker creates a locker on the given client.
func NewRedisLocker(client *redis.Client) *RedisLocker {
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		expiry: defaultExpiry,
		tries:  defaultTries,
	}
}

// Lock acquires the mutex called name. The returned func releases it.
func (l *RedisLocker) Lock(ctx context.Context, name string) (func() error, error) {
	mutex := l.locker.NewMutex(name, redsync.WithExpiry(l.expiry), redsync.WithTries(l.tries))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() error {
		_, err := mutex.Unlock()
		return err
	}, nil
}
