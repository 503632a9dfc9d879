//go:build unit || e2e

package builder

import (
	"time"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/guest"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/domain/stay"
	"resort-booking/internal/infra/converter"
	"resort-booking/internal/infra/pgquery"

	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ReservationID string
	Guest         guest.Input
	CheckIn       time.Time
	Nights        int
	Rooms         []booking.Room
	AddOns        []addon.Line
	Currency      string
	Locale        string
	Method        payment.Method
	PaymentRef    string
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ReservationID: "CB-1001",
		Guest: guest.Input{
			FirstName: "Saraa",
			LastName:  "Bold",
			Email:     "saraa@example.com",
			Phone:     "+97699112233",
			Country:   "MN",
		},
		CheckIn: checkIn,
		Nights:  3,
		Rooms: []booking.Room{
			{RoomTypeID: "A", Name: "Lake view", RatePerNight: decimal.NewFromInt(100000), Adults: 2},
		},
		Currency: "MNT",
		Locale:   "en",
		Method:   payment.MethodQPay,
		Now:      time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRooms(rooms ...booking.Room) *BookingBuilder {
	b.Rooms = rooms
	return b
}

func (b *BookingBuilder) WithAddOns(lines ...addon.Line) *BookingBuilder {
	b.AddOns = lines
	return b
}

func (b *BookingBuilder) WithMethod(m payment.Method) *BookingBuilder {
	b.Method = m
	return b
}

func (b *BookingBuilder) WithPaymentRef(ref string) *BookingBuilder {
	b.PaymentRef = ref
	return b
}

func (b *BookingBuilder) WithoutReservation() *BookingBuilder {
	b.ReservationID = ""
	return b
}

func (b *BookingBuilder) roomTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range b.Rooms {
		total = total.Add(r.RatePerNight.Mul(decimal.NewFromInt(int64(b.Nights))))
	}
	return total
}

func (b *BookingBuilder) addOnTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.AddOns {
		total = total.Add(l.Total)
	}
	return total
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	bk, err := booking.NewBooking(booking.NewParams{
		ReservationID: b.ReservationID,
		Guest:         guest.Reconstruct(b.Guest),
		Stay:          stay.Reconstruct(b.CheckIn, b.CheckIn.AddDate(0, 0, b.Nights)),
		Rooms:         b.Rooms,
		AddOns:        b.AddOns,
		RoomTotal:     b.roomTotal(),
		AddOnTotal:    b.addOnTotal(),
		Currency:      b.Currency,
		Locale:        b.Locale,
		PaymentMethod: b.Method,
	}, b.Now)
	if err != nil {
		return nil, err
	}
	if b.PaymentRef != "" {
		bk.AttachPayment(b.PaymentRef, b.Now)
	}
	return bk, nil
}

// MustBuild is for fixtures where the defaults are known to be valid.
func (b *BookingBuilder) MustBuild() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildRow() pgquery.Booking {
	row, err := converter.BookingToRow(b.MustBuild())
	if err != nil {
		panic(err)
	}
	return row
}
