package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/redisstore"
	"resort-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

var RedisModule = fx.Module("redis",
	fx.Provide(NewRedis),
)

// NewDB fails startup when Postgres cannot be reached within connectTimeout.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(closePool))
	return pool, nil
}

// NewRedis fails startup when Redis is unreachable; sessions and
// idempotency keys live nowhere else.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redisstore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := redisstore.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}))
	return client, nil
}
