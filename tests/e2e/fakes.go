//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/domain/stay"
	"resort-booking/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// FakeResort stands in for the property management system and the QR
// payment gateway so the flow runs without outside calls.
type FakeResort struct {
	mu           sync.Mutex
	Offers       []cart.RoomOffer
	Reservations []shared.ReservationRequest
	Confirmed    []string
	Cancelled    []string
	Invoices     map[string]payment.InvoiceRequest
	paid         map[string]bool
}

func NewFakeResort() *FakeResort {
	f := &FakeResort{}
	f.Reset()
	return f
}

func (f *FakeResort) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Offers = []cart.RoomOffer{
		{RoomTypeID: "lake-view", Name: "Lake View Double", RatePerNight: decimal.NewFromInt(220000), Currency: "MNT", MaxGuests: 2, RoomsAvailable: 3},
		{RoomTypeID: "family-ger", Name: "Family Ger", RatePerNight: decimal.NewFromInt(310000), Currency: "MNT", MaxGuests: 4, RoomsAvailable: 1},
	}
	f.Reservations = nil
	f.Confirmed = nil
	f.Cancelled = nil
	f.Invoices = map[string]payment.InvoiceRequest{}
	f.paid = map[string]bool{}
}

// MarkPaid makes the next check of every open invoice report it as paid.
func (f *FakeResort) MarkPaid() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id := range f.Invoices {
		f.paid[id] = true
	}
}

func (f *FakeResort) FetchAvailability(_ context.Context, _ stay.Stay, _ string) ([]cart.RoomOffer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]cart.RoomOffer(nil), f.Offers...), nil
}

func (f *FakeResort) CreateReservation(_ context.Context, req shared.ReservationRequest) (*shared.ReservationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Reservations = append(f.Reservations, req)
	return &shared.ReservationResult{ReservationID: fmt.Sprintf("CB-%d", len(f.Reservations)), Status: "not_confirmed"}, nil
}

func (f *FakeResort) ConfirmReservation(_ context.Context, reservationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Confirmed = append(f.Confirmed, reservationID)
	return nil
}

func (f *FakeResort) CancelReservation(_ context.Context, reservationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Cancelled = append(f.Cancelled, reservationID)
	return nil
}

func (f *FakeResort) CreateInvoice(_ context.Context, req payment.InvoiceRequest) (*payment.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("inv-%d", len(f.Invoices)+1)
	f.Invoices[id] = req
	return &payment.Invoice{ID: id, QRText: "qr:" + req.Reference, ShortURL: "https://qpay.example/" + id}, nil
}

func (f *FakeResort) CheckInvoice(_ context.Context, invoiceID string) (*payment.CheckResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.Invoices[invoiceID]
	if !ok || !f.paid[invoiceID] {
		return &payment.CheckResult{}, nil
	}
	return &payment.CheckResult{Paid: true, PaidAmount: req.Amount, PaymentID: "pay-" + invoiceID}, nil
}

// disabledCard is the card provider with card payments switched off.
type disabledCard struct{}

func (disabledCard) Enabled() bool { return false }

func (disabledCard) CreateIntent(context.Context, decimal.Decimal, string, string) (*payment.CardIntent, error) {
	return nil, fmt.Errorf("card payments disabled")
}

func (disabledCard) ParseWebhook([]byte, string) (*payment.CardEvent, error) {
	return nil, fmt.Errorf("card payments disabled")
}
