package booking

import (
	"errors"
	"strings"
	"time"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/domain/guest"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNoRooms           = errors.New("booking must contain at least one room")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrMissingActor      = errors.New("manual confirmation requires a staff member")
	ErrNoteTooLong       = errors.New("note must be at most 500 characters")
)

const maxNoteLength = 500

// Room is one physical room instance with its occupants.
type Room struct {
	RoomTypeID   string
	Name         string
	RatePerNight decimal.Decimal
	Adults       int
	Children     int
}

type Booking struct {
	id                   uuid.UUID
	reference            string
	reservationID        string
	status               Status
	guest                guest.Details
	stay                 stay.Stay
	rooms                []Room
	addOns               []addon.Line
	roomTotal            decimal.Decimal
	addOnTotal           decimal.Decimal
	currency             string
	locale               string
	paymentMethod        payment.Method
	paymentRef           string
	paymentFailure       string
	paidVia              PaidVia
	paidAt               *time.Time
	confirmedBy          *uuid.UUID
	note                 string
	reservationConfirmed bool
	createdAt            time.Time
	updatedAt            time.Time
}

type NewParams struct {
	// ID is generated when nil. Checkout fixes it early so the reference can
	// be sent to the reservation system before the booking is stored.
	ID            uuid.UUID
	ReservationID string
	Guest         guest.Details
	Stay          stay.Stay
	Rooms         []Room
	AddOns        []addon.Line
	RoomTotal     decimal.Decimal
	AddOnTotal    decimal.Decimal
	Currency      string
	Locale        string
	PaymentMethod payment.Method
}

func NewBooking(p NewParams, now time.Time) (*Booking, error) {
	if len(p.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	if p.RoomTotal.IsNegative() || p.AddOnTotal.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !p.PaymentMethod.IsValid() {
		return nil, payment.ErrInvalidMethod
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Booking{
		id:            id,
		reference:     NewReference(id),
		reservationID: p.ReservationID,
		status:        StatusPendingPayment,
		guest:         p.Guest,
		stay:          p.Stay,
		rooms:         append([]Room(nil), p.Rooms...),
		addOns:        append([]addon.Line(nil), p.AddOns...),
		roomTotal:     p.RoomTotal,
		addOnTotal:    p.AddOnTotal,
		currency:      p.Currency,
		locale:        p.Locale,
		paymentMethod: p.PaymentMethod,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewReference derives the short code printed on invoices and given to
// guests over the phone.
func NewReference(id uuid.UUID) string {
	return "LR-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

type Snapshot struct {
	ID                   uuid.UUID
	Reference            string
	ReservationID        string
	Status               Status
	Guest                guest.Details
	Stay                 stay.Stay
	Rooms                []Room
	AddOns               []addon.Line
	RoomTotal            decimal.Decimal
	AddOnTotal           decimal.Decimal
	Currency             string
	Locale               string
	PaymentMethod        payment.Method
	PaymentRef           string
	PaymentFailure       string
	PaidVia              PaidVia
	PaidAt               *time.Time
	ConfirmedBy          *uuid.UUID
	Note                 string
	ReservationConfirmed bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:                   s.ID,
		reference:            s.Reference,
		reservationID:        s.ReservationID,
		status:               s.Status,
		guest:                s.Guest,
		stay:                 s.Stay,
		rooms:                s.Rooms,
		addOns:               s.AddOns,
		roomTotal:            s.RoomTotal,
		addOnTotal:           s.AddOnTotal,
		currency:             s.Currency,
		locale:               s.Locale,
		paymentMethod:        s.PaymentMethod,
		paymentRef:           s.PaymentRef,
		paymentFailure:       s.PaymentFailure,
		paidVia:              s.PaidVia,
		paidAt:               s.PaidAt,
		confirmedBy:          s.ConfirmedBy,
		note:                 s.Note,
		reservationConfirmed: s.ReservationConfirmed,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:                   b.id,
		Reference:            b.reference,
		ReservationID:        b.reservationID,
		Status:               b.status,
		Guest:                b.guest,
		Stay:                 b.stay,
		Rooms:                b.rooms,
		AddOns:               b.addOns,
		RoomTotal:            b.roomTotal,
		AddOnTotal:           b.addOnTotal,
		Currency:             b.currency,
		Locale:               b.locale,
		PaymentMethod:        b.paymentMethod,
		PaymentRef:           b.paymentRef,
		PaymentFailure:       b.paymentFailure,
		PaidVia:              b.paidVia,
		PaidAt:               b.paidAt,
		ConfirmedBy:          b.confirmedBy,
		Note:                 b.note,
		ReservationConfirmed: b.reservationConfirmed,
		CreatedAt:            b.createdAt,
		UpdatedAt:            b.updatedAt,
	}
}

// AttachPayment records the gateway's invoice or intent id.
func (b *Booking) AttachPayment(ref string, now time.Time) {
	b.paymentRef = ref
	b.updatedAt = now
}

// RecordPaymentFailure keeps the booking pending; the guest may retry.
func (b *Booking) RecordPaymentFailure(msg string, now time.Time) {
	b.paymentFailure = msg
	b.updatedAt = now
}

func (b *Booking) MarkPaid(via PaidVia, now time.Time) error {
	if !b.status.CanTransitionTo(StatusPaid) {
		return ErrInvalidTransition
	}
	b.status = StatusPaid
	b.paidVia = via
	b.paidAt = &now
	b.paymentFailure = ""
	b.updatedAt = now
	return nil
}

// ConfirmManually marks a booking paid on a staff member's word, e.g. for a
// bank transfer the gateway never saw.
func (b *Booking) ConfirmManually(staffID uuid.UUID, note string, now time.Time) error {
	if staffID == uuid.Nil {
		return ErrMissingActor
	}
	note = strings.TrimSpace(note)
	if len([]rune(note)) > maxNoteLength {
		return ErrNoteTooLong
	}
	if err := b.MarkPaid(PaidViaManual, now); err != nil {
		return err
	}
	b.confirmedBy = &staffID
	b.note = note
	return nil
}

func (b *Booking) Cancel(staffID uuid.UUID, reason string, now time.Time) error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) > maxNoteLength {
		return ErrNoteTooLong
	}
	b.status = StatusCancelled
	if staffID != uuid.Nil {
		b.confirmedBy = &staffID
	}
	b.note = reason
	b.updatedAt = now
	return nil
}

// MarkReservationConfirmed records that the reservation system has been told
// about the payment.
func (b *Booking) MarkReservationConfirmed(now time.Time) {
	b.reservationConfirmed = true
	b.updatedAt = now
}

func (b *Booking) NeedsReservationConfirmation() bool {
	return b.status == StatusPaid && !b.reservationConfirmed && b.reservationID != ""
}

func (b *Booking) Total() decimal.Decimal {
	return b.roomTotal.Add(b.addOnTotal)
}

func (b *Booking) Guests() (adults, children int) {
	for _, r := range b.rooms {
		adults += r.Adults
		children += r.Children
	}
	return adults, children
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) Reference() string             { return b.reference }
func (b *Booking) ReservationID() string         { return b.reservationID }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) Guest() guest.Details          { return b.guest }
func (b *Booking) Stay() stay.Stay               { return b.stay }
func (b *Booking) Rooms() []Room                 { return b.rooms }
func (b *Booking) AddOns() []addon.Line          { return b.addOns }
func (b *Booking) RoomTotal() decimal.Decimal    { return b.roomTotal }
func (b *Booking) AddOnTotal() decimal.Decimal   { return b.addOnTotal }
func (b *Booking) Currency() string              { return b.currency }
func (b *Booking) Locale() string                { return b.locale }
func (b *Booking) PaymentMethod() payment.Method { return b.paymentMethod }
func (b *Booking) PaymentRef() string            { return b.paymentRef }
func (b *Booking) PaymentFailure() string        { return b.paymentFailure }
func (b *Booking) PaidVia() PaidVia              { return b.paidVia }
func (b *Booking) PaidAt() *time.Time            { return b.paidAt }
func (b *Booking) ConfirmedBy() *uuid.UUID       { return b.confirmedBy }
func (b *Booking) Note() string                  { return b.note }
func (b *Booking) ReservationConfirmed() bool    { return b.reservationConfirmed }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
