package queries

import (
	"context"
	"strings"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatusFilter = errs.New("invalid status filter")

type BookingFilter struct {
	Status *booking.Status
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListFirstPage(ctx context.Context, status *string, limit int32) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	// GetForGuest answers not-found for a wrong email so ids cannot be enumerated.
	GetForGuest(ctx context.Context, id uuid.UUID, email string) (*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func ParseStatusFilter(s string) (BookingFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BookingFilter{}, nil
	}
	st, err := booking.NewStatus(s)
	if err != nil {
		return BookingFilter{}, ErrInvalidStatusFilter
	}
	return BookingFilter{Status: &st}, nil
}

func (q *bookingQueriesImpl) GetForGuest(ctx context.Context, id uuid.UUID, email string) (*BookingView, error) {
	v, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(v.GuestEmail, strings.TrimSpace(email)) {
		return nil, errs.ErrBookingNotFound
	}
	return v, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var status *string
	if filter.Status != nil {
		s := filter.Status.String()
		status = &s
	}

	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
