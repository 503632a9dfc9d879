package shared

import (
	"context"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/payment"
	"resort-booking/internal/domain/staff"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs booking and staff writes in one transaction. fn may be
// invoked more than once when the database asks for a retry, so it must not
// call external providers.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction, e.g. before calling a
	// provider.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Staff() StaffRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BookingByIDForUpdate locks the row; only meaningful inside Within.
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingByPaymentRef(ctx context.Context, method payment.Method, ref string) (*booking.Booking, error)
	PendingPayments(ctx context.Context, method payment.Method, createdAfter time.Time, limit int) ([]*booking.Booking, error)
	UnconfirmedReservations(ctx context.Context, limit int) ([]*booking.Booking, error)
	// AbandonedCheckouts lists pending bookings created before the cutoff
	// that never got a payment reference.
	AbandonedCheckouts(ctx context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type StaffRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *staff.Staff) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error
}
