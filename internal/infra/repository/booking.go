package repository

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/converter"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db db.DBTX, arg pgquery.Booking) error
	UpdateBooking(ctx context.Context, db db.DBTX, arg pgquery.Booking) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	logger  *slog.Logger
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		logger:  slog.Default(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	row, err := converter.BookingToRow(b)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode booking", err)
	}
	if err := r.queries.CreateBooking(ctx, tx, row); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	row, err := converter.BookingToRow(b)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode booking", err)
	}
	affected, err := r.queries.UpdateBooking(ctx, tx, row)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}
