package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/guest"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/domain/session"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/i18n"
	"resort-booking/internal/usecase/queries"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const checkoutScope = "checkout"

type CheckoutInput struct {
	Guest         guest.Input
	AddOns        []addon.Selection
	PaymentMethod string
	Locale        i18n.Locale
}

type CheckoutResult struct {
	Booking    *queries.BookingView `json:"booking"`
	Invoice    *payment.Invoice     `json:"invoice,omitempty"`
	CardIntent *payment.CardIntent  `json:"card_intent,omitempty"`
	IsReplayed bool                 `json:"-"`
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, sessionID uuid.UUID, in CheckoutInput, idempotencyKey string) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow         shared.UnitOfWork
	sessions    shared.SessionStore
	idempotency shared.IdempotencyStore
	sink        shared.ReservationSink
	qpay        shared.PaymentProvider
	card        shared.CardPaymentProvider
	addons      *addon.Catalog
	metrics     shared.BookingMetrics
	clock       clock.Clock
	cfg         config.Config
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	sessions shared.SessionStore,
	idempotency shared.IdempotencyStore,
	sink shared.ReservationSink,
	qpay shared.PaymentProvider,
	card shared.CardPaymentProvider,
	addons *addon.Catalog,
	metrics shared.BookingMetrics,
	clk clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:         uow,
		sessions:    sessions,
		idempotency: idempotency,
		sink:        sink,
		qpay:        qpay,
		card:        card,
		addons:      addons,
		metrics:     metrics,
		clock:       clk,
		cfg:         cfg,
	}
}

// Checkout turns the session's cart into a pending booking with a payment
// attached. A repeated Idempotency-Key with the same request replays the
// first response. Before a booking is saved a failure releases the key so the
// guest can retry; after that the key is kept and a retry only creates the
// payment for the saved booking.
func (c *checkoutCommandsImpl) Checkout(ctx context.Context, sessionID uuid.UUID, in CheckoutInput, idempotencyKey string) (*CheckoutResult, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	// The cart is cleared on success, so the fingerprint covers only what
	// the guest submitted. The key is scoped to the session.
	scope := checkoutScope + ":" + sessionID.String()
	requestHash := calculateRequestHash(in)
	rec, claimed, err := c.idempotency.Begin(ctx, scope, idempotencyKey, requestHash, c.cfg.Booking.IdempotencyTTL)
	if err != nil {
		return nil, err
	}
	if !claimed {
		if rec.RequestHash == requestHash && rec.Status == shared.IdempotencyFailed && rec.BookingID != nil {
			return c.resume(ctx, scope, idempotencyKey, sessionID, *rec.BookingID, in)
		}
		return replay(rec, requestHash)
	}

	result, savedID, err := c.checkout(ctx, sessionID, in)
	return c.settle(ctx, scope, idempotencyKey, in.PaymentMethod, result, savedID, err)
}

// settle records the outcome against the idempotency key. savedID is the
// booking already stored when err is not nil, or uuid.Nil.
func (c *checkoutCommandsImpl) settle(ctx context.Context, scope, key, method string, result *CheckoutResult, savedID uuid.UUID, err error) (*CheckoutResult, error) {
	ttl := c.cfg.Booking.IdempotencyTTL
	if err != nil {
		c.metrics.CheckoutFailed(failureReason(err))
		if savedID != uuid.Nil {
			if failErr := c.idempotency.Fail(ctx, scope, key, savedID, ttl); failErr != nil {
				slog.WarnContext(ctx, "failed to mark idempotency key failed", "key", key, "booking_id", savedID, "error", failErr.Error())
			}
			return nil, err
		}
		if relErr := c.idempotency.Release(ctx, scope, key); relErr != nil {
			slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", relErr.Error())
		}
		return nil, err
	}

	body, err := json.Marshal(result)
	if err != nil {
		return nil, errs.Wrap(err, "marshal checkout result")
	}
	if err := c.idempotency.Complete(ctx, scope, key, result.Booking.ID, body, ttl); err != nil {
		// The booking exists; a lost key only means a retry is not replayed.
		slog.WarnContext(ctx, "failed to complete idempotency key", "key", key, "error", err.Error())
	}
	c.metrics.CheckoutCompleted(method)
	return result, nil
}

func (c *checkoutCommandsImpl) checkout(ctx context.Context, sessionID uuid.UUID, in CheckoutInput) (*CheckoutResult, uuid.UUID, error) {
	s, err := shared.LoadSession(ctx, c.sessions, sessionID, in.Locale.String(), c.clock.Now())
	if err != nil {
		return nil, uuid.Nil, err
	}
	if s.Stay == nil {
		return nil, uuid.Nil, errs.ErrStayRequired
	}
	if s.Cart.IsEmpty() {
		return nil, uuid.Nil, errs.ErrEmptyCart
	}

	details, err := guest.NewDetails(in.Guest)
	if err != nil {
		return nil, uuid.Nil, errs.WithDetail(errs.Mark(err, errs.ErrDomainValidation), err.Error())
	}
	method, err := payment.NewMethod(in.PaymentMethod)
	if err != nil {
		return nil, uuid.Nil, errs.WithDetail(errs.Mark(err, errs.ErrDomainValidation), err.Error())
	}
	if method == payment.MethodCard && !c.card.Enabled() {
		return nil, uuid.Nil, errs.ErrPaymentMethodUnavailable
	}

	assignments, err := s.Cart.Distribute(s.Guests)
	if err != nil {
		return nil, uuid.Nil, markDistributionError(err)
	}

	nights := s.Stay.Nights()
	roomCount := s.Cart.RoomCount()
	addOnLines, addOnTotal, err := c.addons.Price(in.AddOns, nights, roomCount, s.Guests.Total())
	if err != nil {
		return nil, uuid.Nil, errs.WithDetail(errs.Mark(err, errs.ErrDomainValidation), err.Error())
	}
	roomTotal := s.Cart.Total(nights)
	currency := c.cfg.Booking.Currency

	rooms, reservationRooms := expandRooms(s.Cart, assignments)

	bookingID := uuid.New()
	reference := booking.NewReference(bookingID)
	reservation, err := c.sink.CreateReservation(ctx, shared.ReservationRequest{
		Reference: reference,
		Guest:     details,
		Stay:      *s.Stay,
		Rooms:     reservationRooms,
		AddOns:    addOnLines,
		Total:     roomTotal.Add(addOnTotal),
		Currency:  currency,
	})
	if err != nil {
		slog.ErrorContext(ctx, "reservation create failed", "reference", reference, "error", err.Error())
		return nil, uuid.Nil, errs.Mark(err, errs.ErrProviderUnavailable)
	}

	b, err := booking.NewBooking(booking.NewParams{
		ID:            bookingID,
		ReservationID: reservation.ReservationID,
		Guest:         details,
		Stay:          *s.Stay,
		Rooms:         rooms,
		AddOns:        addOnLines,
		RoomTotal:     roomTotal,
		AddOnTotal:    addOnTotal,
		Currency:      currency,
		Locale:        in.Locale.String(),
		PaymentMethod: method,
	}, c.clock.Now())
	if err != nil {
		c.cancelReservation(ctx, reservation.ReservationID, reference)
		return nil, uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		c.cancelReservation(ctx, reservation.ReservationID, reference)
		return nil, uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result, err := c.collectPayment(ctx, s, b)
	if err != nil {
		return nil, b.ID(), err
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", b.ID(),
		"reference", b.Reference(),
		"reservation_id", b.ReservationID(),
		"method", method.String(),
		"total", b.Total().String(),
	)
	return result, b.ID(), nil
}

// resume finishes a checkout whose booking was saved but whose payment was
// not created. The reservation system is not called again.
func (c *checkoutCommandsImpl) resume(ctx context.Context, scope, key string, sessionID, bookingID uuid.UUID, in CheckoutInput) (*CheckoutResult, error) {
	resumed, err := c.idempotency.Resume(ctx, scope, key, c.cfg.Booking.IdempotencyTTL)
	if err != nil {
		return nil, err
	}
	if !resumed {
		return nil, errs.ErrIdempotencyInProgress
	}

	b, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		err = mapBookingErr(err)
		if errs.Is(err, errs.ErrBookingNotFound) {
			// Nothing to resume; let the next attempt start over.
			return c.settle(ctx, scope, key, in.PaymentMethod, nil, uuid.Nil, err)
		}
		return c.settle(ctx, scope, key, in.PaymentMethod, nil, bookingID, err)
	}

	// Paid by hand or cancelled by staff in the meantime: answer with the
	// booking as it stands.
	if b.Status() != booking.StatusPendingPayment || b.PaymentRef() != "" {
		view, err := queries.NewBookingView(b)
		if err != nil {
			return c.settle(ctx, scope, key, in.PaymentMethod, nil, bookingID, err)
		}
		return c.settle(ctx, scope, key, in.PaymentMethod, &CheckoutResult{Booking: view}, uuid.Nil, nil)
	}

	s, err := shared.LoadSession(ctx, c.sessions, sessionID, in.Locale.String(), c.clock.Now())
	if err != nil {
		return c.settle(ctx, scope, key, in.PaymentMethod, nil, bookingID, err)
	}
	result, err := c.collectPayment(ctx, s, b)
	if err == nil {
		slog.InfoContext(ctx, "checkout resumed", "booking_id", b.ID(), "reference", b.Reference())
	}
	return c.settle(ctx, scope, key, in.PaymentMethod, result, bookingID, err)
}

// collectPayment creates the invoice or intent for a saved booking, stores
// its reference and clears the cart.
func (c *checkoutCommandsImpl) collectPayment(ctx context.Context, s *session.Session, b *booking.Booking) (*CheckoutResult, error) {
	result := &CheckoutResult{}
	ref, err := c.createPayment(ctx, b, result)
	if err != nil {
		c.recordPaymentFailure(ctx, b, err)
		return nil, err
	}

	b.AttachPayment(ref, c.clock.Now())
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	s.Cart.Clear()
	s.UpdatedAt = c.clock.Now()
	if err := c.sessions.Save(ctx, s); err != nil {
		slog.WarnContext(ctx, "failed to clear cart after checkout", "session_id", s.ID, "error", err.Error())
	}

	view, err := queries.NewBookingView(b)
	if err != nil {
		return nil, err
	}
	result.Booking = view
	return result, nil
}

// cancelReservation releases a reservation that has no local booking. It
// runs even when the request context is already cancelled.
func (c *checkoutCommandsImpl) cancelReservation(ctx context.Context, reservationID, reference string) {
	if err := c.sink.CancelReservation(context.WithoutCancel(ctx), reservationID); err != nil {
		slog.ErrorContext(ctx, "failed to cancel orphaned reservation",
			"reservation_id", reservationID,
			"reference", reference,
			"error", err.Error(),
		)
	}
}

func (c *checkoutCommandsImpl) createPayment(ctx context.Context, b *booking.Booking, result *CheckoutResult) (string, error) {
	switch b.PaymentMethod() {
	case payment.MethodQPay:
		inv, err := c.qpay.CreateInvoice(ctx, payment.InvoiceRequest{
			Reference:   b.Reference(),
			Description: fmt.Sprintf("Booking %s", b.Reference()),
			Amount:      b.Total(),
			CallbackURL: callbackURL(c.cfg.QPay.CallbackURL, b.ID()),
		})
		if err != nil {
			return "", errs.Mark(err, errs.ErrProviderUnavailable)
		}
		result.Invoice = inv
		return inv.ID, nil
	case payment.MethodCard:
		intent, err := c.card.CreateIntent(ctx, b.Total(), b.Currency(), b.Reference())
		if err != nil {
			return "", errs.Mark(err, errs.ErrProviderUnavailable)
		}
		result.CardIntent = intent
		return intent.ID, nil
	default:
		return "", errs.ErrPaymentMethodUnavailable
	}
}

// callbackURL tags the gateway callback with the booking so the handler can
// poll the right invoice.
func callbackURL(base string, bookingID uuid.UUID) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("booking_id", bookingID.String())
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *checkoutCommandsImpl) recordPaymentFailure(ctx context.Context, b *booking.Booking, cause error) {
	slog.ErrorContext(ctx, "payment create failed", "booking_id", b.ID(), "error", cause.Error())
	b.RecordPaymentFailure(cause.Error(), c.clock.Now())
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record payment failure", "booking_id", b.ID(), "error", err.Error())
	}
}

// expandRooms pairs every physical room with its assignment. The
// reservation system receives one entry per room with quantity 1.
func expandRooms(c *cart.Cart, assignments []cart.RoomAssignment) ([]booking.Room, []shared.ReservationRoom) {
	rooms := make([]booking.Room, 0, len(assignments))
	reservationRooms := make([]shared.ReservationRoom, 0, len(assignments))
	for _, a := range assignments {
		line, _ := c.Line(a.RoomTypeID)
		rooms = append(rooms, booking.Room{
			RoomTypeID:   a.RoomTypeID,
			Name:         line.Name(),
			RatePerNight: line.RatePerNight(),
			Adults:       a.Adults,
			Children:     a.Children,
		})
		reservationRooms = append(reservationRooms, shared.ReservationRoom{
			RoomTypeID: a.RoomTypeID,
			Quantity:   1,
			Adults:     a.Adults,
			Children:   a.Children,
		})
	}
	return rooms, reservationRooms
}

func markDistributionError(err error) error {
	var capErr *cart.CapacityError
	switch {
	case errors.As(err, &capErr):
		return errs.WithDetail(
			errs.Mark(err, errs.ErrInsufficientCapacity),
			fmt.Sprintf("rooms hold %d guests, %d more needed", capErr.Capacity, capErr.Shortfall),
		)
	case errors.Is(err, cart.ErrTooManyRooms):
		return errs.Mark(err, errs.ErrTooManyRooms)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func replay(rec *shared.IdempotencyRecord, requestHash string) (*CheckoutResult, error) {
	if rec.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyConflict
	}
	switch rec.Status {
	case shared.IdempotencyCompleted:
		if len(rec.Response) == 0 {
			return nil, errs.New("completed checkout missing stored response")
		}
		var result CheckoutResult
		if err := json.Unmarshal(rec.Response, &result); err != nil {
			return nil, errs.Wrap(err, "unmarshal stored checkout result")
		}
		result.IsReplayed = true
		return &result, nil
	case shared.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency status %q", rec.Status)
	}
}

func calculateRequestHash(in CheckoutInput) string {
	data, _ := json.Marshal(struct {
		Guest  guest.Input       `json:"guest"`
		AddOns []addon.Selection `json:"add_ons"`
		Method string            `json:"method"`
	}{in.Guest, in.AddOns, in.PaymentMethod})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func failureReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrInsufficientCapacity), errs.Is(err, errs.ErrTooManyRooms):
		return "capacity"
	case errs.Is(err, errs.ErrEmptyCart), errs.Is(err, errs.ErrStayRequired):
		return "cart"
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, errs.ErrPaymentMethodUnavailable):
		return "validation"
	case errs.Is(err, errs.ErrProviderUnavailable):
		return "provider"
	case errs.Is(err, errs.ErrDatabaseOperationFailed):
		return "database"
	default:
		return "other"
	}
}
