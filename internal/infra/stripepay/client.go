// Package stripepay takes card payments through Stripe PaymentIntents.
package stripepay

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"resort-booking/internal/domain/payment"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	metadataReference = "reference"

	eventIntentSucceeded = "payment_intent.succeeded"
	eventIntentFailed    = "payment_intent.payment_failed"
)

// Currencies Stripe charges in whole units.
var zeroDecimal = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Client implements shared.CardPaymentProvider.
type Client struct {
	intents       intentCreator
	webhookSecret string
	logger        *slog.Logger
}

// NewClient returns a disabled provider when card payments are switched off.
func NewClient(cfg config.StripeConfig) *Client {
	c := &Client{logger: slog.Default().With("component", "stripe")}
	if !cfg.Enabled {
		return c
	}
	api := &client.API{}
	api.Init(strings.TrimSpace(cfg.SecretKey), nil)
	c.intents = api.PaymentIntents
	c.webhookSecret = strings.TrimSpace(cfg.WebhookSecret)
	return c
}

func newWithCreator(intents intentCreator, webhookSecret string) *Client {
	return &Client{
		intents:       intents,
		webhookSecret: webhookSecret,
		logger:        slog.Default().With("component", "stripe"),
	}
}

func (c *Client) Enabled() bool {
	return c.intents != nil
}

func (c *Client) CreateIntent(ctx context.Context, amount decimal.Decimal, currency, reference string) (*payment.CardIntent, error) {
	if !c.Enabled() {
		return nil, errs.ErrPaymentMethodUnavailable
	}
	minor, err := MinorUnits(amount, currency)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minor),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description: stripe.String("Booking " + reference),
	}
	params.Context = ctx
	params.AddMetadata(metadataReference, reference)
	params.SetIdempotencyKey("intent-" + reference)

	pi, err := c.intents.New(params)
	if err != nil {
		c.logger.ErrorContext(ctx, "payment intent create failed", "reference", reference, "error", err.Error())
		return nil, errs.Mark(errs.Wrap(err, "create payment intent"), errs.ErrProviderUnavailable)
	}
	return &payment.CardIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ParseWebhook verifies the Stripe-Signature header and reduces the event to
// the two intent outcomes bookings react to. Anything else is CardIgnored.
func (c *Client) ParseWebhook(payload []byte, signature string) (*payment.CardEvent, error) {
	if !c.Enabled() {
		return nil, errs.ErrPaymentMethodUnavailable
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "verify stripe signature"), errs.ErrInvalidWebhook)
	}

	out := &payment.CardEvent{ID: event.ID, Type: payment.CardIgnored}
	switch string(event.Type) {
	case eventIntentSucceeded:
		out.Type = payment.CardSucceeded
	case eventIntentFailed:
		out.Type = payment.CardFailed
	default:
		return out, nil
	}

	if event.Data == nil {
		return nil, errs.Mark(errs.New("stripe event without data"), errs.ErrInvalidWebhook)
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode payment intent"), errs.ErrInvalidWebhook)
	}
	out.IntentID = pi.ID
	out.Reference = pi.Metadata[metadataReference]
	if pi.LastPaymentError != nil {
		out.FailureMessage = pi.LastPaymentError.Msg
	}
	return out, nil
}

// MinorUnits converts an amount to the smallest currency unit Stripe expects.
// Fractions of the minor unit are rejected rather than rounded.
func MinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	if !amount.IsPositive() {
		return 0, errs.WithDetail(errs.Mark(errs.Newf("amount %s must be positive", amount), errs.ErrDomainValidation), "amount must be positive")
	}
	scaled := amount
	if !zeroDecimal[strings.ToLower(currency)] {
		scaled = amount.Shift(2)
	}
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, errs.Mark(errs.Newf("amount %s has sub-unit precision", amount), errs.ErrDomainValidation)
	}
	return scaled.IntPart(), nil
}
