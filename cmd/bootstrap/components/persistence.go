package components

import (
	"time"

	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/infra/readstore"
	"resort-booking/internal/infra/uow"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase/queries"
	"resort-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Staff
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StaffReadQueries)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
	),
)

// Booking and staff repositories are opened per transaction by the unit of
// work, so only the unit of work itself is in the graph.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewBookingReadStore(q readstore.BookingReadQueries, dbtx db.DBTX, cfg config.Config) *readstore.BookingReadStore {
	return readstore.NewBookingReadStore(q, dbtx, resortLocation(cfg))
}

func NewUnitOfWork(pool *pgxpool.Pool, q *pgquery.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, resortLocation(cfg), uow.WithRetryPolicy(uow.RetryPolicy{
		Retries: cfg.DB.TxRetries,
		Base:    cfg.DB.TxRetryBase,
	}))
}

func resortLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}
