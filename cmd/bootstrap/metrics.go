package bootstrap

import (
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/infra/metrics"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		fx.Annotate(
			metrics.NewHTTPMetrics,
			fx.As(new(middleware.RequestObserver)),
		),
		fx.Annotate(
			metrics.NewBookingMetrics,
			fx.As(new(shared.BookingMetrics)),
		),
		fx.Annotate(
			metrics.NewJobMetrics,
			fx.As(new(commands.JobMetrics)),
		),
	),
)

// NewRegistry keeps the application's collectors off the global registry so
// tests can build as many as they like.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
