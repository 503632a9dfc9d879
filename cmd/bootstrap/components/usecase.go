package components

import (
	"context"
	"log/slog"
	"time"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/domain/content"
	"resort-booking/internal/infra/redisstore"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseJobsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	addon.DefaultCatalog,
	content.DefaultCatalog,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStaffQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewContentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseJobsModule = fx.Module("usecase/jobs",
	fx.Provide(
		NewReconcilerLock,
		commands.NewPaymentReconciler,
	),
	fx.Invoke(startReconciler),
)

// NewReconcilerLock holds the polling lease a little longer than one pass
// so a slow pass is not joined by a second instance.
func NewReconcilerLock(client *redisstore.Client, cfg config.Config) (commands.Lock, error) {
	ttl := cfg.Reconciler.Interval * 2
	if ttl <= 0 {
		ttl = time.Minute
	}
	lock, err := redisstore.NewRedisLock(client, "reconciler", ttl)
	if err != nil {
		return nil, err
	}
	return lock, nil
}

func startReconciler(lc fx.Lifecycle, r *commands.PaymentReconciler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Reconciler.Enabled {
		logger.Info("payment reconciler disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				r.Run(ctx)
			}()
			logger.Info("payment reconciler started", "interval", cfg.Reconciler.Interval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				logger.Warn("payment reconciler did not stop in time")
			}
			return nil
		},
	})
}
