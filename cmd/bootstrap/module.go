package bootstrap

import (
	"resort-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.StoreModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.HandlerModule,
)
