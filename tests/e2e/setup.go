//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"resort-booking/cmd/bootstrap"
	"resort-booking/cmd/bootstrap/components"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase/shared"
	"resort-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite boots the whole application against real Postgres and Redis
// with the resort's external systems replaced by FakeResort.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Resort *FakeResort
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := postgresContainer.endpoint(t)
	rd := redisContainer.endpoint(t)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, pg)
	cfg.Redis.Addr = rd.Addr()
	// suites in other processes share the Redis container
	cfg.Redis.KeyPrefix = "e2e-" + uuid.NewString()
	cfg.Cookie.Secure = false
	cfg.QPay.CallbackURL = "http://localhost/api/webhooks/qpay"

	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	require.NoError(t, applyMigrations(pool), "database migration failed")

	s.DB = pool
	s.Config = cfg
	s.Resort = NewFakeResort()
	s.Router = startApp(t, pool, cfg, s.Resort)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	s.Resort.Reset()
}

// createDatabase gives every test process its own database and drops it
// when the suite finishes.
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()
	name := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	exec := func(sql string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			return err
		}
		defer admin.Close()
		_, err = admin.Exec(ctx, sql)
		return err
	}

	var err error
	for attempt := range 5 {
		if err = exec("CREATE DATABASE " + name); err == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", err)
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		if err := exec("DROP DATABASE IF EXISTS " + name + " WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:        pg.Host,
		Port:        pg.Port.Port(),
		User:        pgUser,
		Password:    pgPassword,
		DBName:      name,
		SSLMode:     "disable",
		TimeZone:    "Asia/Ulaanbaatar",
		MaxConns:    10,
		TxRetries:   3,
		TxRetryBase: 10 * time.Millisecond,
	}
}

// applyMigrations executes every migrations/*.sql in name order, the same
// files atlas applies in production, without needing the atlas binary.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	slices.Sort(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package directory to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above the test package")
		}
		dir = parent
	}
}

// startApp builds the production fx graph with the database, config and
// providers swapped for test doubles.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config, resort *FakeResort) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.StoreModule,
		fx.Module("fakeprovider",
			fx.Provide(
				func() shared.AvailabilityProvider { return resort },
				func() shared.ReservationSink { return resort },
				func() shared.PaymentProvider { return resort },
				func() shared.CardPaymentProvider { return disabledCard{} },
			),
		),
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start application")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop application", "error", err)
		}
	})

	require.NotNil(t, router, "application did not produce a router")
	return router
}
