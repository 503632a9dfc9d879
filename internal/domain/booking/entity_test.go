//go:build unit

package booking_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/payment"
	"resort-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("starts pending with totals", func(t *testing.T) {
		bk, err := builder.NewBookingBuilder().
			WithAddOns(addon.Line{Code: "sauna", Quantity: 1, UnitPrice: decimal.NewFromInt(80000), Total: decimal.NewFromInt(80000)}).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPendingPayment, bk.Status())
		assert.True(t, bk.RoomTotal().Equal(decimal.NewFromInt(300000)))
		assert.True(t, bk.Total().Equal(decimal.NewFromInt(380000)))
		assert.Regexp(t, `^LR-[0-9A-F]{8}$`, bk.Reference())
		adults, children := bk.Guests()
		assert.Equal(t, 2, adults)
		assert.Equal(t, 0, children)
	})

	t.Run("no rooms", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().WithRooms().BuildDomain()
		assert.ErrorIs(t, err, booking.ErrNoRooms)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().WithMethod("cash").BuildDomain()
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}

func TestBooking_StatusTransitions(t *testing.T) {
	now := time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC)
	staffID := uuid.New()

	cases := []struct {
		name    string
		prepare func(*booking.Booking) error
		act     func(*booking.Booking) error
		want    booking.Status
		errIs   error
	}{
		{
			name: "pending to paid",
			act:  func(b *booking.Booking) error { return b.MarkPaid(booking.PaidViaQPay, now) },
			want: booking.StatusPaid,
		},
		{
			name: "pending to cancelled",
			act:  func(b *booking.Booking) error { return b.Cancel(staffID, "guest called", now) },
			want: booking.StatusCancelled,
		},
		{
			name:    "paid is terminal",
			prepare: func(b *booking.Booking) error { return b.MarkPaid(booking.PaidViaCard, now) },
			act:     func(b *booking.Booking) error { return b.Cancel(staffID, "", now) },
			want:    booking.StatusPaid,
			errIs:   booking.ErrInvalidTransition,
		},
		{
			name:    "cancelled is terminal",
			prepare: func(b *booking.Booking) error { return b.Cancel(staffID, "", now) },
			act:     func(b *booking.Booking) error { return b.MarkPaid(booking.PaidViaQPay, now) },
			want:    booking.StatusCancelled,
			errIs:   booking.ErrInvalidTransition,
		},
		{
			name:    "paid twice",
			prepare: func(b *booking.Booking) error { return b.MarkPaid(booking.PaidViaQPay, now) },
			act:     func(b *booking.Booking) error { return b.ConfirmManually(staffID, "", now) },
			want:    booking.StatusPaid,
			errIs:   booking.ErrInvalidTransition,
		},
		{
			name:  "manual confirmation needs staff",
			act:   func(b *booking.Booking) error { return b.ConfirmManually(uuid.Nil, "", now) },
			want:  booking.StatusPendingPayment,
			errIs: booking.ErrMissingActor,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bk := builder.NewBookingBuilder().MustBuild()
			if tc.prepare != nil {
				require.NoError(t, tc.prepare(bk))
			}

			err := tc.act(bk)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, bk.Status())
		})
	}
}

func TestBooking_ConfirmManually(t *testing.T) {
	now := time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC)
	staffID := uuid.New()
	bk := builder.NewBookingBuilder().MustBuild()
	bk.RecordPaymentFailure("card declined", now)

	require.NoError(t, bk.ConfirmManually(staffID, "  paid at front desk ", now))

	assert.Equal(t, booking.PaidViaManual, bk.PaidVia())
	require.NotNil(t, bk.ConfirmedBy())
	assert.Equal(t, staffID, *bk.ConfirmedBy())
	assert.Equal(t, "paid at front desk", bk.Note())
	assert.Empty(t, bk.PaymentFailure())
	assert.Equal(t, now, *bk.PaidAt())
	assert.True(t, bk.NeedsReservationConfirmation())

	bk.MarkReservationConfirmed(now)
	assert.False(t, bk.NeedsReservationConfirmation())
}

func TestBooking_SnapshotRoundTrip(t *testing.T) {
	bk := builder.NewBookingBuilder().WithPaymentRef("inv-1").MustBuild()

	again := booking.Reconstruct(bk.Snapshot())

	assert.Equal(t, bk.Snapshot(), again.Snapshot())
	assert.Equal(t, "inv-1", again.PaymentRef())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, booking.StatusPendingPayment.CanTransitionTo(booking.StatusPaid))
	assert.True(t, booking.StatusPendingPayment.CanTransitionTo(booking.StatusCancelled))
	assert.False(t, booking.StatusPendingPayment.CanTransitionTo(booking.StatusPendingPayment))
	assert.False(t, booking.StatusPaid.CanTransitionTo(booking.StatusCancelled))
	assert.False(t, booking.StatusCancelled.CanTransitionTo(booking.StatusPaid))

	_, err := booking.NewStatus("refunded")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
