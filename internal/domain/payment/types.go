package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidMethod = errors.New("invalid payment method")

type Method string

const (
	MethodQPay Method = "qpay"
	MethodCard Method = "card"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodQPay, MethodCard:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}

// BankLink is a deep link into a banking app. Display only.
type BankLink struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Link        string `json:"link"`
}

// Invoice is what the QR payment gateway returns for a booking.
type Invoice struct {
	ID        string     `json:"id"`
	QRText    string     `json:"qr_text"`
	QRImage   string     `json:"qr_image"`
	ShortURL  string     `json:"short_url"`
	BankLinks []BankLink `json:"bank_links"`
}

type InvoiceRequest struct {
	Reference   string
	Description string
	Amount      decimal.Decimal
	CallbackURL string
}

// CheckResult is the outcome of polling an invoice.
type CheckResult struct {
	Paid       bool
	PaidAmount decimal.Decimal
	PaymentID  string
}

type CardIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type CardEventType string

const (
	CardSucceeded CardEventType = "succeeded"
	CardFailed    CardEventType = "failed"
	CardIgnored   CardEventType = "ignored"
)

// CardEvent is a verified card webhook reduced to what bookings care about.
type CardEvent struct {
	ID             string
	Type           CardEventType
	IntentID       string
	Reference      string
	FailureMessage string
}
