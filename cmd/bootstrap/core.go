package bootstrap

import (
	"log/slog"

	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

// NewLogger also installs the logger as slog's default, which the stores and
// provider clients log through.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, jwt.WithLeeway(cfg.JWT.Leeway))
}
