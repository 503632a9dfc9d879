package commands

import (
	"context"
	"errors"
	"log/slog"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentCommands interface {
	// CheckPayment polls the QR gateway and marks the booking paid when the
	// invoice is settled in full. Card bookings are returned unchanged.
	CheckPayment(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error)
	ConfirmPayment(ctx context.Context, bookingID, staffID uuid.UUID, note string) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, staffID uuid.UUID, reason string) (*queries.BookingView, error)
	HandleStripeEvent(ctx context.Context, payload []byte, signature string) error
	// ConfirmReservation tells the reservation system a booking was paid.
	ConfirmReservation(ctx context.Context, b *booking.Booking) error
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	qpay    shared.PaymentProvider
	card    shared.CardPaymentProvider
	sink    shared.ReservationSink
	metrics shared.BookingMetrics
	clock   clock.Clock
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	qpay shared.PaymentProvider,
	card shared.CardPaymentProvider,
	sink shared.ReservationSink,
	metrics shared.BookingMetrics,
	clk clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:     uow,
		qpay:    qpay,
		card:    card,
		sink:    sink,
		metrics: metrics,
		clock:   clk,
	}
}

func (p *paymentCommandsImpl) CheckPayment(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	b, err := p.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, mapBookingErr(err)
	}

	if b.Status() != booking.StatusPendingPayment || b.PaymentMethod() != payment.MethodQPay || b.PaymentRef() == "" {
		return queries.NewBookingView(b)
	}

	paid, err := p.pollInvoice(ctx, b)
	if err != nil {
		return nil, err
	}
	if !paid {
		return queries.NewBookingView(b)
	}

	b, err = p.markPaid(ctx, bookingID, booking.PaidViaQPay)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(b)
}

func (p *paymentCommandsImpl) pollInvoice(ctx context.Context, b *booking.Booking) (bool, error) {
	res, err := p.qpay.CheckInvoice(ctx, b.PaymentRef())
	if err != nil {
		slog.WarnContext(ctx, "payment check failed", "booking_id", b.ID(), "error", err.Error())
		return false, errs.Mark(err, errs.ErrProviderUnavailable)
	}
	if !res.Paid {
		return false, nil
	}
	if res.PaidAmount.LessThan(b.Total()) {
		slog.WarnContext(ctx, "invoice underpaid",
			"booking_id", b.ID(),
			"paid", res.PaidAmount.String(),
			"total", b.Total().String(),
		)
		return false, nil
	}
	return true, nil
}

func (p *paymentCommandsImpl) ConfirmPayment(ctx context.Context, bookingID, staffID uuid.UUID, note string) (*queries.BookingView, error) {
	var b *booking.Booking
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			return mapBookingErr(err)
		}
		if err := b.ConfirmManually(staffID, note, p.clock.Now()); err != nil {
			return markTransitionErr(err)
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking confirmed manually", "booking_id", bookingID, "staff_id", staffID)
	p.metrics.PaymentConfirmed(string(booking.PaidViaManual))
	p.confirmReservationQuietly(ctx, b)
	return queries.NewBookingView(b)
}

func (p *paymentCommandsImpl) Cancel(ctx context.Context, bookingID, staffID uuid.UUID, reason string) (*queries.BookingView, error) {
	var b *booking.Booking
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			return mapBookingErr(err)
		}
		if err := b.Cancel(staffID, reason, p.clock.Now()); err != nil {
			return markTransitionErr(err)
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking cancelled", "booking_id", bookingID, "staff_id", staffID)
	p.cancelReservationQuietly(ctx, b)
	return queries.NewBookingView(b)
}

// cancelReservationQuietly frees the rooms held for a cancelled booking. A
// failure is left for staff to release in the reservation system.
func (p *paymentCommandsImpl) cancelReservationQuietly(ctx context.Context, b *booking.Booking) {
	if b.ReservationID() == "" {
		return
	}
	if err := p.sink.CancelReservation(context.WithoutCancel(ctx), b.ReservationID()); err != nil {
		slog.WarnContext(ctx, "reservation cancel failed",
			"booking_id", b.ID(),
			"reservation_id", b.ReservationID(),
			"error", err.Error(),
		)
	}
}

// HandleStripeEvent acknowledges events for unknown intents so the sender
// stops retrying them.
func (p *paymentCommandsImpl) HandleStripeEvent(ctx context.Context, payload []byte, signature string) error {
	if !p.card.Enabled() {
		return errs.ErrPaymentMethodUnavailable
	}

	event, err := p.card.ParseWebhook(payload, signature)
	if err != nil {
		return errs.WithDetail(errs.Mark(err, errs.ErrInvalidWebhook), "signature verification failed")
	}
	if event.Type == payment.CardIgnored {
		return nil
	}

	b, err := p.uow.CommandReads().BookingByPaymentRef(ctx, payment.MethodCard, event.IntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.WarnContext(ctx, "card event for unknown intent", "event_id", event.ID, "intent_id", event.IntentID)
			return nil
		}
		return err
	}

	switch event.Type {
	case payment.CardSucceeded:
		_, err := p.markPaid(ctx, b.ID(), booking.PaidViaCard)
		if errs.Is(err, errs.ErrInvalidTransition) {
			slog.WarnContext(ctx, "card payment for closed booking", "booking_id", b.ID(), "status", b.Status().String())
			return nil
		}
		return err
	case payment.CardFailed:
		return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			locked, err := tx.Reads().BookingByIDForUpdate(ctx, b.ID())
			if err != nil {
				return mapBookingErr(err)
			}
			if locked.Status() != booking.StatusPendingPayment {
				return nil
			}
			locked.RecordPaymentFailure(event.FailureMessage, p.clock.Now())
			return tx.Bookings().Update(ctx, tx.DB(), locked)
		})
	default:
		return nil
	}
}

// markPaid is idempotent: a booking that is already paid is returned as is.
func (p *paymentCommandsImpl) markPaid(ctx context.Context, bookingID uuid.UUID, via booking.PaidVia) (*booking.Booking, error) {
	var b *booking.Booking
	changed := false
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		b, err = tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			return mapBookingErr(err)
		}
		if b.Status() == booking.StatusPaid {
			return nil
		}
		if err := b.MarkPaid(via, p.clock.Now()); err != nil {
			return markTransitionErr(err)
		}
		changed = true
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		slog.InfoContext(ctx, "booking paid", "booking_id", bookingID, "via", string(via))
		p.metrics.PaymentConfirmed(string(via))
	}
	p.confirmReservationQuietly(ctx, b)
	return b, nil
}

func (p *paymentCommandsImpl) confirmReservationQuietly(ctx context.Context, b *booking.Booking) {
	if !b.NeedsReservationConfirmation() {
		return
	}
	if err := p.ConfirmReservation(ctx, b); err != nil {
		// The reconciler retries unconfirmed reservations.
		slog.WarnContext(ctx, "reservation confirm failed", "booking_id", b.ID(), "error", err.Error())
	}
}

func (p *paymentCommandsImpl) ConfirmReservation(ctx context.Context, b *booking.Booking) error {
	if err := p.sink.ConfirmReservation(ctx, b.ReservationID()); err != nil {
		return errs.Mark(err, errs.ErrProviderUnavailable)
	}
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reads().BookingByIDForUpdate(ctx, b.ID())
		if err != nil {
			return mapBookingErr(err)
		}
		locked.MarkReservationConfirmed(p.clock.Now())
		if err := tx.Bookings().Update(ctx, tx.DB(), locked); err != nil {
			return err
		}
		b.MarkReservationConfirmed(locked.UpdatedAt())
		return nil
	})
}

func mapBookingErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrBookingNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func markTransitionErr(err error) error {
	if errors.Is(err, booking.ErrInvalidTransition) {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return errs.WithDetail(errs.Mark(err, errs.ErrDomainValidation), err.Error())
}
