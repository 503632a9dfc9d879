package components

import (
	"log/slog"

	"resort-booking/internal/handler"
	"resort-booking/internal/handler/api"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewContentHandler,
		api.NewAvailabilityHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewBookingHandler,
		api.NewWebhookHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Content      *api.ContentHandler
	Availability *api.AvailabilityHandler
	Cart         *api.CartHandler
	Checkout     *api.CheckoutHandler
	Booking      *api.BookingHandler
	Webhook      *api.WebhookHandler
	Auth         *api.AuthHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Content:      p.Content,
		Availability: p.Availability,
		Cart:         p.Cart,
		Checkout:     p.Checkout,
		Booking:      p.Booking,
		Webhook:      p.Webhook,
		Auth:         p.Auth,
	}
}

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

func NewMiddlewares(
	auth *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
	observer middleware.RequestObserver,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) handler.Middlewares {
	return handler.Middlewares{
		Auth:        auth,
		RateLimiter: limiter,
		Metrics:     observer,
		Gatherer:    gatherer,
		Logger:      logger,
	}
}
