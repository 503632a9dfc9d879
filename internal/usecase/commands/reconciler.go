package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const (
	JobPaymentCheck        = "payment_check"
	JobReservationConfirm  = "reservation_confirm"
	JobAbandonedCheckout   = "abandoned_checkout"
	defaultReconcileWorker = 4

	defaultReconcileInterval = 30 * time.Second
)

// Lock keeps several instances from polling the same invoices.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

type JobMetrics interface {
	ObserveDuration(job string, d time.Duration)
	IncSuccess(job string)
	IncFailure(job string)
}

const abandonedReason = "payment was never created"

// PaymentReconciler settles QR invoices nobody polled, retries reservation
// confirmations that failed when the payment landed and cancels checkouts
// whose payment was never created once no retry can resume them.
type PaymentReconciler struct {
	uow      shared.UnitOfWork
	payments PaymentCommands
	lock     Lock
	metrics  JobMetrics
	clock    clock.Clock
	cfg      config.ReconcilerConfig
	// retryWindow is how long a failed checkout can still be resumed.
	retryWindow time.Duration
}

func NewPaymentReconciler(
	uow shared.UnitOfWork,
	payments PaymentCommands,
	lock Lock,
	metrics JobMetrics,
	clk clock.Clock,
	cfg config.Config,
) *PaymentReconciler {
	rc := cfg.Reconciler
	if rc.Concurrency < 1 {
		rc.Concurrency = defaultReconcileWorker
	}
	if rc.Interval <= 0 {
		rc.Interval = defaultReconcileInterval
	}
	return &PaymentReconciler{
		uow:      uow,
		payments: payments,
		lock:     lock,
		metrics:  metrics,
		clock:    clk,
		cfg:      rc,

		retryWindow: cfg.Booking.IdempotencyTTL,
	}
}

// Run ticks until ctx is cancelled.
func (r *PaymentReconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := r.RunOnce(ctx); err != nil {
			slog.WarnContext(ctx, "reconcile cycle failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *PaymentReconciler) RunOnce(ctx context.Context) error {
	locked, err := r.lock.Acquire(ctx)
	if err != nil {
		return err
	}
	if !locked {
		slog.DebugContext(ctx, "reconciler lock held elsewhere; skipping cycle")
		return nil
	}
	defer func() {
		if relErr := r.lock.Release(ctx); relErr != nil {
			slog.WarnContext(ctx, "failed to release reconciler lock", "error", relErr.Error())
		}
	}()

	return multierr.Combine(
		r.runJob(ctx, JobPaymentCheck, r.checkPendingPayments),
		r.runJob(ctx, JobReservationConfirm, r.confirmReservations),
		r.runJob(ctx, JobAbandonedCheckout, r.cancelAbandoned),
	)
}

func (r *PaymentReconciler) runJob(ctx context.Context, name string, job func(context.Context) error) error {
	start := r.clock.Now()
	err := job(ctx)
	r.metrics.ObserveDuration(name, r.clock.Now().Sub(start))
	if err != nil {
		r.metrics.IncFailure(name)
		return err
	}
	r.metrics.IncSuccess(name)
	return nil
}

func (r *PaymentReconciler) checkPendingPayments(ctx context.Context) error {
	since := r.clock.Now().Add(-r.cfg.MaxAge)
	pending, err := r.uow.CommandReads().PendingPayments(ctx, payment.MethodQPay, since, r.cfg.BatchSize)
	if err != nil {
		return err
	}
	return r.each(pending, func(b *booking.Booking) error {
		_, err := r.payments.CheckPayment(ctx, b.ID())
		return err
	})
}

func (r *PaymentReconciler) confirmReservations(ctx context.Context) error {
	unconfirmed, err := r.uow.CommandReads().UnconfirmedReservations(ctx, r.cfg.BatchSize)
	if err != nil {
		return err
	}
	return r.each(unconfirmed, func(b *booking.Booking) error {
		return r.payments.ConfirmReservation(ctx, b)
	})
}

func (r *PaymentReconciler) cancelAbandoned(ctx context.Context) error {
	cutoff := r.clock.Now().Add(-r.retryWindow)
	abandoned, err := r.uow.CommandReads().AbandonedCheckouts(ctx, cutoff, r.cfg.BatchSize)
	if err != nil {
		return err
	}
	return r.each(abandoned, func(b *booking.Booking) error {
		_, err := r.payments.Cancel(ctx, b.ID(), uuid.Nil, abandonedReason)
		return err
	})
}

// each runs fn with bounded concurrency. One failing booking does not stop
// the others; every error is returned.
func (r *PaymentReconciler) each(bookings []*booking.Booking, fn func(*booking.Booking) error) error {
	var (
		g      errgroup.Group
		mu     sync.Mutex
		result error
	)
	g.SetLimit(r.cfg.Concurrency)
	for _, b := range bookings {
		g.Go(func() error {
			if err := fn(b); err != nil {
				mu.Lock()
				result = multierr.Append(result, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return result
}
