// Package redisstore keeps short-lived booking state in Redis: visitor
// sessions, checkout idempotency records and the reconciler lock.
package redisstore

import (
	"context"
	"strings"
	"time"

	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	sessionPrefix     = "session"
	idempotencyPrefix = "idempotency"
	retryPrefix       = "idempotency_retry"
	lockPrefix        = "lock"
)

var errClientNotInitialized = errs.New("redis client not initialized")

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	SetNX(context.Context, string, any, time.Duration) *redis.BoolCmd
	Expire(context.Context, string, time.Duration) *redis.BoolCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// Client namespaces every key under the configured prefix.
type Client struct {
	store  cmdable
	raw    *redis.Client
	prefix string
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.Addr == "" {
		return nil, errs.New("redis address is required")
	}
	raw := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, errs.Wrap(err, "ping redis")
	}
	return &Client{store: raw, raw: raw, prefix: cfg.KeyPrefix}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return errClientNotInitialized
	}
	return c.store.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if c.store == nil {
		return "", errClientNotInitialized
	}
	return c.store.Get(ctx, key).Result()
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c.store == nil {
		return errClientNotInitialized
	}
	return c.store.Set(ctx, key, value, ttl).Err()
}

func (c *Client) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if c.store == nil {
		return false, errClientNotInitialized
	}
	return c.store.SetNX(ctx, key, value, ttl).Result()
}

func (c *Client) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if c.store == nil {
		return errClientNotInitialized
	}
	return c.store.Expire(ctx, key, ttl).Err()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	if c.store == nil {
		return errClientNotInitialized
	}
	return c.store.Del(ctx, keys...).Err()
}

func (c *Client) SessionKey(id string) string {
	return c.buildKey(sessionPrefix, id)
}

func (c *Client) IdempotencyKey(scope, key string) string {
	return c.buildKey(idempotencyPrefix, scope, key)
}

// IdempotencyRetryKey guards resuming a failed checkout.
func (c *Client) IdempotencyRetryKey(scope, key string) string {
	return c.buildKey(retryPrefix, scope, key)
}

func (c *Client) LockKey(name string) string {
	return c.buildKey(lockPrefix, name)
}

// buildKey skips empty parts so a missing prefix does not leave a leading colon.
func (c *Client) buildKey(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	if c.prefix != "" {
		segments = append(segments, c.prefix)
	}
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, ":")
}
