//go:build unit

package redisstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/session"
	"resort-booking/internal/domain/stay"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBuilders(t *testing.T) {
	client := &Client{prefix: "resort"}
	assert.Equal(t, "resort:session:abc", client.SessionKey("abc"))
	assert.Equal(t, "resort:idempotency:checkout:s1:k1", client.IdempotencyKey("checkout:s1", "k1"))
	assert.Equal(t, "resort:idempotency_retry:checkout:s1:k1", client.IdempotencyRetryKey("checkout:s1", "k1"))
	assert.Equal(t, "resort:lock:reconciler", client.LockKey("reconciler"))

	bare := &Client{}
	assert.Equal(t, "session:abc", bare.SessionKey("abc"))
}

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	loc, err := time.LoadLocation("Asia/Ulaanbaatar")
	require.NoError(t, err)
	store := NewSessionStore(&Client{store: mock, prefix: "resort"}, time.Hour, loc)

	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	sess := session.New("mn", now)
	st, err := stay.Parse("2026-07-10", "2026-07-12", loc, stay.Policy{})
	require.NoError(t, err)
	offers := []cart.RoomOffer{{
		RoomTypeID: "A", Name: "Lake view", RatePerNight: decimal.RequireFromString("125000.50"),
		Currency: "MNT", MaxGuests: 2, RoomsAvailable: 3,
	}}
	sess.ApplySearch(st, cart.GuestCount{Adults: 2, Children: 1}, offers, now)
	sess.Cart.AddRoom(offers[0])
	sess.Cart.AddRoom(offers[0])

	require.NoError(t, store.Save(ctx, sess))
	assert.Equal(t, time.Hour, mock.ttls["resort:session:"+sess.ID.String()])

	loaded, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, "mn", loaded.Locale)
	require.NotNil(t, loaded.Stay)
	assert.Equal(t, 2, loaded.Stay.Nights())
	assert.Equal(t, "2026-07-10", loaded.Stay.CheckInDate())
	assert.Equal(t, cart.GuestCount{Adults: 2, Children: 1}, loaded.Guests)
	require.Len(t, loaded.Offers, 1)
	assert.True(t, loaded.Offers[0].RatePerNight.Equal(offers[0].RatePerNight))
	line, ok := loaded.Cart.Line("A")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity())
	assert.Len(t, mock.expireCalls, 1, "load slides the expiry")
}

func TestSessionStore_Missing(t *testing.T) {
	store := NewSessionStore(&Client{store: newMockCmdable()}, time.Hour, nil)

	_, err := store.Load(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
}

func TestSessionStore_Corrupt(t *testing.T) {
	mock := newMockCmdable()
	client := &Client{store: mock}
	id := uuid.New()
	mock.data[client.SessionKey(id.String())] = "{broken"

	_, err := NewSessionStore(client, time.Hour, nil).Load(context.Background(), id)
	assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
}

func TestIdempotencyStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	store := NewIdempotencyStore(&Client{store: mock}, clock.NewMockClock(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))

	rec, claimed, err := store.Begin(ctx, "checkout:s1", "k1", "hash-a", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Equal(t, shared.IdempotencyProcessing, rec.Status)

	rec, claimed, err = store.Begin(ctx, "checkout:s1", "k1", "hash-b", time.Hour)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, "hash-a", rec.RequestHash)
	assert.Equal(t, shared.IdempotencyProcessing, rec.Status)

	bookingID := uuid.New()
	require.NoError(t, store.Complete(ctx, "checkout:s1", "k1", bookingID, []byte(`{"ok":true}`), time.Hour))

	rec, claimed, err = store.Begin(ctx, "checkout:s1", "k1", "hash-a", time.Hour)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, shared.IdempotencyCompleted, rec.Status)
	require.NotNil(t, rec.BookingID)
	assert.Equal(t, bookingID, *rec.BookingID)
	assert.JSONEq(t, `{"ok":true}`, string(rec.Response))

	require.NoError(t, store.Release(ctx, "checkout:s1", "k1"))
	_, claimed, err = store.Begin(ctx, "checkout:s1", "k1", "hash-c", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed, "released key can be claimed again")
}

func TestIdempotencyStore_FailAndResume(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	store := NewIdempotencyStore(&Client{store: mock}, clock.NewMockClock(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
	bookingID := uuid.New()

	_, claimed, err := store.Begin(ctx, "checkout:s1", "k1", "hash-a", time.Hour)
	require.NoError(t, err)
	require.True(t, claimed)

	resumed, err := store.Resume(ctx, "checkout:s1", "k1", time.Hour)
	require.NoError(t, err)
	assert.False(t, resumed, "a processing record cannot be resumed")

	require.NoError(t, store.Fail(ctx, "checkout:s1", "k1", bookingID, time.Hour))
	rec, claimed, err := store.Begin(ctx, "checkout:s1", "k1", "hash-a", time.Hour)
	require.NoError(t, err)
	assert.False(t, claimed, "a failed checkout keeps its key")
	assert.Equal(t, shared.IdempotencyFailed, rec.Status)
	require.NotNil(t, rec.BookingID)
	assert.Equal(t, bookingID, *rec.BookingID)

	resumed, err = store.Resume(ctx, "checkout:s1", "k1", time.Hour)
	require.NoError(t, err)
	assert.True(t, resumed)
	resumed, err = store.Resume(ctx, "checkout:s1", "k1", time.Hour)
	require.NoError(t, err)
	assert.False(t, resumed, "only one retry resumes")

	rec, _, err = store.Begin(ctx, "checkout:s1", "k1", "hash-a", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, shared.IdempotencyProcessing, rec.Status)

	require.NoError(t, store.Fail(ctx, "checkout:s1", "k1", bookingID, time.Hour))
	resumed, err = store.Resume(ctx, "checkout:s1", "k1", time.Hour)
	require.NoError(t, err)
	assert.True(t, resumed, "failing again frees the retry claim")

	require.NoError(t, store.Release(ctx, "checkout:s1", "k1"))
	assert.Empty(t, mock.data)
}

func TestIdempotencyStore_ScopesAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewIdempotencyStore(&Client{store: newMockCmdable()}, clock.NewRealClock())

	_, claimed, err := store.Begin(ctx, "checkout:s1", "k1", "h", time.Hour)
	require.NoError(t, err)
	require.True(t, claimed)

	_, claimed, err = store.Begin(ctx, "checkout:s2", "k1", "h", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestRedisLock(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	first, err := NewRedisLock(client, "reconciler", time.Minute)
	require.NoError(t, err)
	second, err := NewRedisLock(client, "reconciler", time.Minute)
	require.NoError(t, err)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// a non-owner release must not free the lock
	require.NoError(t, second.Release(ctx))
	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Release(ctx))
	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = NewRedisLock(client, "", time.Minute)
	assert.Error(t, err)
}

type expireCall struct {
	key string
	ttl time.Duration
}

type mockCmdable struct {
	data        map[string]string
	ttls        map[string]time.Duration
	expireCalls []expireCall
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func stringify(value any) string {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(value)
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = stringify(value)
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = stringify(value)
	m.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	m.expireCalls = append(m.expireCalls, expireCall{key: key, ttl: expiration})
	_, ok := m.data[key]
	return redis.NewBoolResult(ok, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
