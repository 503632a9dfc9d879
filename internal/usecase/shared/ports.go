package shared

import (
	"context"
	"time"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/guest"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/domain/session"
	"resort-booking/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AvailabilityProvider lists bookable room types for a stay.
type AvailabilityProvider interface {
	FetchAvailability(ctx context.Context, st stay.Stay, currency string) ([]cart.RoomOffer, error)
}

// ReservationRoom is one physical room in a reservation request. Quantity is
// always 1; multi-room lines are expanded before submission.
type ReservationRoom struct {
	RoomTypeID string
	Quantity   int
	Adults     int
	Children   int
}

type ReservationRequest struct {
	Reference string
	Guest     guest.Details
	Stay      stay.Stay
	Rooms     []ReservationRoom
	AddOns    []addon.Line
	Total     decimal.Decimal
	Currency  string
}

type ReservationResult struct {
	ReservationID string
	Status        string
}

type ReservationSink interface {
	CreateReservation(ctx context.Context, req ReservationRequest) (*ReservationResult, error)
	ConfirmReservation(ctx context.Context, reservationID string) error
	CancelReservation(ctx context.Context, reservationID string) error
}

type PaymentProvider interface {
	CreateInvoice(ctx context.Context, req payment.InvoiceRequest) (*payment.Invoice, error)
	CheckInvoice(ctx context.Context, invoiceID string) (*payment.CheckResult, error)
}

type CardPaymentProvider interface {
	Enabled() bool
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency, reference string) (*payment.CardIntent, error)
	ParseWebhook(payload []byte, signature string) (*payment.CardEvent, error)
}

type SessionStore interface {
	Load(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Save(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
	// IdempotencyFailed marks a checkout whose booking was saved but whose
	// payment could not be created. A retry resumes that booking.
	IdempotencyFailed = "failed"
)

type IdempotencyRecord struct {
	Key         string     `json:"key"`
	RequestHash string     `json:"request_hash"`
	Status      string     `json:"status"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	Response    []byte     `json:"response,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type IdempotencyStore interface {
	// Begin claims the key. When it already exists the stored record is
	// returned with claimed=false.
	Begin(ctx context.Context, scope, key, requestHash string, ttl time.Duration) (rec *IdempotencyRecord, claimed bool, err error)
	// Complete stores the response so a replay returns the same payload.
	Complete(ctx context.Context, scope, key string, bookingID uuid.UUID, response []byte, ttl time.Duration) error
	// Fail keeps the key and records the saved booking.
	Fail(ctx context.Context, scope, key string, bookingID uuid.UUID, ttl time.Duration) error
	// Resume moves a failed record back to processing. Only one caller wins.
	Resume(ctx context.Context, scope, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, scope, key string) error
}

// BookingMetrics counts funnel outcomes.
type BookingMetrics interface {
	CheckoutCompleted(method string)
	CheckoutFailed(reason string)
	PaymentConfirmed(via string)
}
