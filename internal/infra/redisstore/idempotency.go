package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IdempotencyStore claims keys with SET NX so two concurrent checkouts with
// the same key cannot both run.
type IdempotencyStore struct {
	client *Client
	clock  clock.Clock
}

func NewIdempotencyStore(client *Client, clk clock.Clock) *IdempotencyStore {
	return &IdempotencyStore{client: client, clock: clk}
}

func (s *IdempotencyStore) Begin(ctx context.Context, scope, key, requestHash string, ttl time.Duration) (*shared.IdempotencyRecord, bool, error) {
	rec := &shared.IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		Status:      shared.IdempotencyProcessing,
		CreatedAt:   s.clock.Now(),
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, false, errs.Wrap(err, "encode idempotency record")
	}

	redisKey := s.client.IdempotencyKey(scope, key)
	// The second attempt covers a record that expired between SETNX and GET.
	for range 2 {
		claimed, err := s.client.SetNX(ctx, redisKey, body, ttl)
		if err != nil {
			return nil, false, errs.Wrap(err, "claim idempotency key")
		}
		if claimed {
			return rec, true, nil
		}

		existing, err := s.get(ctx, redisKey)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return nil, false, errs.New("idempotency key kept expiring while claiming")
}

func (s *IdempotencyStore) Complete(ctx context.Context, scope, key string, bookingID uuid.UUID, response []byte, ttl time.Duration) error {
	return s.settle(ctx, scope, key, ttl, func(rec *shared.IdempotencyRecord) {
		rec.Status = shared.IdempotencyCompleted
		rec.BookingID = &bookingID
		rec.Response = response
	})
}

func (s *IdempotencyStore) Fail(ctx context.Context, scope, key string, bookingID uuid.UUID, ttl time.Duration) error {
	return s.settle(ctx, scope, key, ttl, func(rec *shared.IdempotencyRecord) {
		rec.Status = shared.IdempotencyFailed
		rec.BookingID = &bookingID
		rec.Response = nil
	})
}

// Resume claims a separate retry key with SET NX before flipping a failed
// record back to processing, so concurrent retries resume at most once.
func (s *IdempotencyStore) Resume(ctx context.Context, scope, key string, ttl time.Duration) (bool, error) {
	retryKey := s.client.IdempotencyRetryKey(scope, key)
	claimed, err := s.client.SetNX(ctx, retryKey, s.clock.Now().UTC().Format(time.RFC3339), ttl)
	if err != nil {
		return false, errs.Wrap(err, "claim idempotency retry")
	}
	if !claimed {
		return false, nil
	}

	redisKey := s.client.IdempotencyKey(scope, key)
	rec, err := s.get(ctx, redisKey)
	if err == nil && rec.Status == shared.IdempotencyFailed {
		rec.Status = shared.IdempotencyProcessing
		if err = s.put(ctx, redisKey, rec, ttl); err == nil {
			return true, nil
		}
	}
	if delErr := s.client.Del(ctx, retryKey); delErr != nil {
		return false, errs.Wrap(delErr, "drop idempotency retry")
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	return false, nil
}

func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, s.client.IdempotencyKey(scope, key), s.client.IdempotencyRetryKey(scope, key)); err != nil {
		return errs.Wrap(err, "release idempotency key")
	}
	return nil
}

// settle rewrites the record and drops any retry claim so the next retry
// starts from the stored state.
func (s *IdempotencyStore) settle(ctx context.Context, scope, key string, ttl time.Duration, update func(*shared.IdempotencyRecord)) error {
	redisKey := s.client.IdempotencyKey(scope, key)
	rec, err := s.get(ctx, redisKey)
	if err != nil {
		return errs.Wrap(err, "load idempotency record")
	}
	update(rec)
	if err := s.put(ctx, redisKey, rec, ttl); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.client.IdempotencyRetryKey(scope, key)); err != nil {
		return errs.Wrap(err, "drop idempotency retry")
	}
	return nil
}

func (s *IdempotencyStore) put(ctx context.Context, redisKey string, rec *shared.IdempotencyRecord, ttl time.Duration) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "encode idempotency record")
	}
	if err := s.client.Set(ctx, redisKey, body, ttl); err != nil {
		return errs.Wrap(err, "store idempotency record")
	}
	return nil
}

func (s *IdempotencyStore) get(ctx context.Context, redisKey string) (*shared.IdempotencyRecord, error) {
	raw, err := s.client.Get(ctx, redisKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, err
		}
		return nil, errs.Wrap(err, "read idempotency key")
	}
	var rec shared.IdempotencyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errs.Wrap(err, "decode idempotency record")
	}
	return &rec, nil
}
