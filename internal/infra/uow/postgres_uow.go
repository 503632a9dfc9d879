package uow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/infra/readstore"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction failed after retries")
)

// RetryPolicy controls how serialization failures and deadlocks are retried.
// Wait doubles from Base on every attempt, plus up to 20% jitter.
type RetryPolicy struct {
	Retries int
	Base    time.Duration
}

func (p RetryPolicy) wait(attempt int) time.Duration {
	d := p.Base << attempt
	if j := int64(d / 5); j > 0 {
		d += time.Duration(rand.Int64N(j))
	}
	return d
}

type Option func(*PostgresUoW)

func WithRetryPolicy(p RetryPolicy) Option {
	return func(u *PostgresUoW) { u.retry = p }
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *pgquery.Queries
	loc   *time.Location
	retry RetryPolicy
}

// NewPostgresUoW loads bookings with stay dates in loc.
func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries, loc *time.Location, opts ...Option) shared.UnitOfWork {
	u := &PostgresUoW{
		pool:  pool,
		q:     q,
		loc:   loc,
		retry: RetryPolicy{Retries: 3, Base: 100 * time.Millisecond},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Within runs fn under READ COMMITTED. Rows that must not race, such as a
// booking being confirmed, are locked with BookingByIDForUpdate.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !retryable(err) {
			return err
		}
		if attempt >= u.retry.Retries {
			slog.ErrorContext(ctx, "transaction retries exhausted", "attempts", attempt+1, "error", err)
			return errs.Mark(err, errRetriesExhausted)
		}

		wait := u.retry.wait(attempt)
		slog.WarnContext(ctx, "retrying transaction", "attempt", attempt+1, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns exactly one pgx transaction so no deferred rollback outlives
// its loop iteration.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr)
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", // serialization_failure
		"40P01": // deadlock_detected
		return true
	}
	return false
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	bookings shared.BookingRepository
	staff    shared.StaffRepository
	reads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX { return t.dbtx }

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookings
}

func (t *pgTx) Staff() shared.StaffRepository {
	if t.staff == nil {
		t.staff = repository.NewStaffRepository(t.uow.q)
	}
	return t.staff
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{uow: t.uow, dbtx: t.dbtx}
	}
	return t.reads
}

// commandReads loads full aggregates, inside a transaction when dbtx is one.
type commandReads struct {
	uow   *PostgresUoW
	dbtx  db.DBTX
	store *readstore.BookingReadStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.store == nil {
		r.store = readstore.NewBookingReadStore(r.uow.q, r.dbtx, r.uow.loc)
	}
	return r.store
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings().Booking(ctx, id)
}

func (r *commandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings().BookingForUpdate(ctx, id)
}

func (r *commandReads) BookingByPaymentRef(ctx context.Context, method payment.Method, ref string) (*booking.Booking, error) {
	return r.bookings().BookingByPaymentRef(ctx, method, ref)
}

func (r *commandReads) PendingPayments(ctx context.Context, method payment.Method, createdAfter time.Time, limit int) ([]*booking.Booking, error) {
	return r.bookings().PendingPayments(ctx, method, createdAfter, limit)
}

func (r *commandReads) UnconfirmedReservations(ctx context.Context, limit int) ([]*booking.Booking, error) {
	return r.bookings().UnconfirmedReservations(ctx, limit)
}

func (r *commandReads) AbandonedCheckouts(ctx context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error) {
	return r.bookings().AbandonedCheckouts(ctx, createdBefore, limit)
}
