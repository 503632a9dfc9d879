//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase/commands"
	"resort-booking/tests/common/builder"
	commandsmock "resort-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerFixture struct {
	*uowMocks
	payments *commandsmock.MockPaymentCommands
	lock     *commandsmock.MockLock
	metrics  *commandsmock.MockJobMetrics
	rec      *commands.PaymentReconciler

	retryWindow time.Duration
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	ctrl := gomock.NewController(t)
	f := &reconcilerFixture{
		uowMocks: newUowMocks(ctrl),
		payments: commandsmock.NewMockPaymentCommands(ctrl),
		lock:     commandsmock.NewMockLock(ctrl),
		metrics:  commandsmock.NewMockJobMetrics(ctrl),
	}
	cfg := config.NewTestConfig()
	cfg.Reconciler = config.ReconcilerConfig{Concurrency: 2, BatchSize: 10, MaxAge: 48 * time.Hour, Interval: time.Minute}
	f.retryWindow = cfg.Booking.IdempotencyTTL
	f.rec = commands.NewPaymentReconciler(f.uow, f.payments, f.lock, f.metrics, clock.NewMockClock(testNow), cfg)
	return f
}

func (f *reconcilerFixture) expectLocked() {
	f.lock.EXPECT().Acquire(gomock.Any()).Return(true, nil)
	f.lock.EXPECT().Release(gomock.Any()).Return(nil)
	f.metrics.EXPECT().ObserveDuration(gomock.Any(), gomock.Any()).Times(3)
}

func (f *reconcilerFixture) expectNoAbandoned() {
	f.reads.EXPECT().AbandonedCheckouts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.metrics.EXPECT().IncSuccess(commands.JobAbandonedCheckout)
}

func TestPaymentReconciler_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("lock held elsewhere skips the cycle", func(t *testing.T) {
		f := newReconcilerFixture(t)
		f.lock.EXPECT().Acquire(gomock.Any()).Return(false, nil)

		assert.NoError(t, f.rec.RunOnce(ctx))
	})

	t.Run("lock error surfaces", func(t *testing.T) {
		f := newReconcilerFixture(t)
		f.lock.EXPECT().Acquire(gomock.Any()).Return(false, errors.New("redis down"))

		assert.EqualError(t, f.rec.RunOnce(ctx), "redis down")
	})

	t.Run("polls pending invoices and retries confirmations", func(t *testing.T) {
		f := newReconcilerFixture(t)
		f.expectLocked()
		pending := []*booking.Booking{builder.NewBookingBuilder().MustBuild(), builder.NewBookingBuilder().MustBuild()}
		unconfirmed := []*booking.Booking{builder.NewBookingBuilder().MustBuild()}

		f.reads.EXPECT().PendingPayments(gomock.Any(), payment.MethodQPay, testNow.Add(-48*time.Hour), 10).Return(pending, nil)
		f.reads.EXPECT().UnconfirmedReservations(gomock.Any(), 10).Return(unconfirmed, nil)
		f.payments.EXPECT().CheckPayment(gomock.Any(), pending[0].ID()).Return(nil, nil)
		f.payments.EXPECT().CheckPayment(gomock.Any(), pending[1].ID()).Return(nil, nil)
		f.payments.EXPECT().ConfirmReservation(gomock.Any(), unconfirmed[0]).Return(nil)
		f.metrics.EXPECT().IncSuccess(commands.JobPaymentCheck)
		f.metrics.EXPECT().IncSuccess(commands.JobReservationConfirm)
		f.expectNoAbandoned()

		require.NoError(t, f.rec.RunOnce(ctx))
	})

	t.Run("cancels checkouts whose payment was never created", func(t *testing.T) {
		f := newReconcilerFixture(t)
		f.expectLocked()
		abandoned := []*booking.Booking{builder.NewBookingBuilder().MustBuild()}

		f.reads.EXPECT().PendingPayments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().UnconfirmedReservations(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().AbandonedCheckouts(gomock.Any(), testNow.Add(-f.retryWindow), 10).Return(abandoned, nil)
		f.payments.EXPECT().Cancel(gomock.Any(), abandoned[0].ID(), uuid.Nil, "payment was never created").Return(nil, nil)
		f.metrics.EXPECT().IncSuccess(commands.JobPaymentCheck)
		f.metrics.EXPECT().IncSuccess(commands.JobReservationConfirm)
		f.metrics.EXPECT().IncSuccess(commands.JobAbandonedCheckout)

		require.NoError(t, f.rec.RunOnce(ctx))
	})

	t.Run("one failing booking does not stop the rest", func(t *testing.T) {
		f := newReconcilerFixture(t)
		f.expectLocked()
		pending := []*booking.Booking{builder.NewBookingBuilder().MustBuild(), builder.NewBookingBuilder().MustBuild()}

		f.reads.EXPECT().PendingPayments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pending, nil)
		f.reads.EXPECT().UnconfirmedReservations(gomock.Any(), gomock.Any()).Return(nil, errors.New("query failed"))
		f.payments.EXPECT().CheckPayment(gomock.Any(), pending[0].ID()).Return(nil, errors.New("gateway down"))
		f.payments.EXPECT().CheckPayment(gomock.Any(), pending[1].ID()).Return(nil, nil)
		f.metrics.EXPECT().IncFailure(commands.JobPaymentCheck)
		f.metrics.EXPECT().IncFailure(commands.JobReservationConfirm)
		f.expectNoAbandoned()

		err := f.rec.RunOnce(ctx)

		require.Error(t, err)
		assert.ErrorContains(t, err, "gateway down")
		assert.ErrorContains(t, err, "query failed")
	})
}

func TestPaymentReconciler_RunStopsOnCancel(t *testing.T) {
	f := newReconcilerFixture(t)
	f.lock.EXPECT().Acquire(gomock.Any()).Return(false, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.rec.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop")
	}
}
