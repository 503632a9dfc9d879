package redisstore

import (
	"context"
	"errors"
	"time"

	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 5 * time.Minute

// RedisLock lets one replica at a time run the reconciler.
type RedisLock struct {
	client *Client
	key    string
	ttl    time.Duration
	owner  string
}

func NewRedisLock(client *Client, name string, ttl time.Duration) (*RedisLock, error) {
	if client == nil {
		return nil, errs.New("redis client required for lock")
	}
	if name == "" {
		return nil, errs.New("lock name is required")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLock{client: client, key: client.LockKey(name), ttl: ttl}, nil
}

func (l *RedisLock) Acquire(ctx context.Context) (bool, error) {
	owner := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, owner, l.ttl)
	if err != nil {
		return false, errs.Wrap(err, "setnx")
	}
	if ok {
		l.owner = owner
	}
	return ok, nil
}

// Release frees the lock only if the owner value still matches.
func (l *RedisLock) Release(ctx context.Context) error {
	if l.owner == "" {
		return nil
	}
	value, err := l.client.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			l.owner = ""
			return nil
		}
		return errs.Wrap(err, "read lock owner")
	}
	if value != l.owner {
		l.owner = ""
		return nil
	}
	if err := l.client.Del(ctx, l.key); err != nil {
		return errs.Wrap(err, "delete lock")
	}
	l.owner = ""
	return nil
}
