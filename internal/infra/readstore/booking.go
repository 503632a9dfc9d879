package readstore

import (
	"context"
	"log/slog"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/converter"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/pkg/pgconv"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBooking(ctx context.Context, db db.DBTX, id uuid.UUID) (pgquery.Booking, error)
	GetBookingForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (pgquery.Booking, error)
	GetBookingByPaymentRef(ctx context.Context, db db.DBTX, method, ref string) (pgquery.Booking, error)
	ListPendingPayments(ctx context.Context, db db.DBTX, method string, createdAfter time.Time, limit int32) ([]pgquery.Booking, error)
	ListUnconfirmedReservations(ctx context.Context, db db.DBTX, limit int32) ([]pgquery.Booking, error)
	ListAbandonedCheckouts(ctx context.Context, db db.DBTX, createdBefore time.Time, limit int32) ([]pgquery.Booking, error)
	ListBookingsFirstPage(ctx context.Context, db db.DBTX, status pgtype.Text, limit int32) ([]pgquery.BookingListRow, error)
	ListBookingsKeyset(ctx context.Context, db db.DBTX, status pgtype.Text, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]pgquery.BookingListRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
	loc     *time.Location
	logger  *slog.Logger
}

// NewBookingReadStore reads stay dates back in loc, the resort's time zone.
func NewBookingReadStore(queries BookingReadQueries, db db.DBTX, loc *time.Location) *BookingReadStore {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
		logger:  slog.Default(),
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := r.Booking(ctx, id)
	if err != nil {
		return nil, err
	}
	v, err := queries.NewBookingView(b)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build booking view", err)
	}
	return v, nil
}

func (r *BookingReadStore) ListFirstPage(ctx context.Context, status *string, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, pgconv.StringPtrToPgtype(status), limit)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list bookings", err)
	}
	return r.listItems(rows)
}

func (r *BookingReadStore) ListKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, pgconv.StringPtrToPgtype(status), lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list bookings after cursor", err)
	}
	return r.listItems(rows)
}

func (r *BookingReadStore) listItems(rows []pgquery.BookingListRow) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := converter.BookingListItemFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking list row", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Aggregate loaders used by the command side.

func (r *BookingReadStore) Booking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get booking", err)
	}
	return r.toDomain(row)
}

func (r *BookingReadStore) BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to lock booking", err)
	}
	return r.toDomain(row)
}

func (r *BookingReadStore) BookingByPaymentRef(ctx context.Context, method payment.Method, ref string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByPaymentRef(ctx, r.db, string(method), ref)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get booking by payment reference", err)
	}
	return r.toDomain(row)
}

func (r *BookingReadStore) PendingPayments(ctx context.Context, method payment.Method, createdAfter time.Time, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListPendingPayments(ctx, r.db, string(method), createdAfter, clampLimit(limit))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list pending payments", err)
	}
	return r.toDomainList(rows)
}

func (r *BookingReadStore) UnconfirmedReservations(ctx context.Context, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListUnconfirmedReservations(ctx, r.db, clampLimit(limit))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list unconfirmed reservations", err)
	}
	return r.toDomainList(rows)
}

func (r *BookingReadStore) AbandonedCheckouts(ctx context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListAbandonedCheckouts(ctx, r.db, createdBefore, clampLimit(limit))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list abandoned checkouts", err)
	}
	return r.toDomainList(rows)
}

func (r *BookingReadStore) toDomain(row pgquery.Booking) (*booking.Booking, error) {
	b, err := converter.BookingFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking row", err)
	}
	return b, nil
}

func (r *BookingReadStore) toDomainList(rows []pgquery.Booking) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func clampLimit(limit int) int32 {
	if limit <= 0 {
		return 1
	}
	if limit > 1000 {
		return 1000
	}
	return int32(limit) // #nosec G115 -- bounded above
}
