package components

import (
	"resort-booking/internal/infra/cloudbeds"
	"resort-booking/internal/infra/qpay"
	"resort-booking/internal/infra/redisstore"
	"resort-booking/internal/infra/stripepay"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// ProviderModule binds the outside world: the property management system
// and both payment providers.
var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewCloudbedsClient,
		func(c *cloudbeds.Client) shared.AvailabilityProvider { return c },
		func(c *cloudbeds.Client) shared.ReservationSink { return c },
		fx.Annotate(
			NewQPayClient,
			fx.As(new(shared.PaymentProvider)),
		),
		fx.Annotate(
			NewStripeClient,
			fx.As(new(shared.CardPaymentProvider)),
		),
	),
)

// StoreModule holds the Redis-backed session and idempotency stores.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			redisstore.NewIdempotencyStore,
			fx.As(new(shared.IdempotencyStore)),
		),
	),
)

func NewCloudbedsClient(cfg config.Config) (*cloudbeds.Client, error) {
	return cloudbeds.NewClient(cfg.Cloudbeds)
}

func NewQPayClient(cfg config.Config) (*qpay.Client, error) {
	return qpay.NewClient(cfg.QPay)
}

func NewStripeClient(cfg config.Config) *stripepay.Client {
	return stripepay.NewClient(cfg.Stripe)
}

func NewSessionStore(client *redisstore.Client, cfg config.Config) *redisstore.SessionStore {
	return redisstore.NewSessionStore(client, cfg.Session.TTL, resortLocation(cfg))
}
