package queries

import (
	"context"

	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound = errs.New("staff not found")
	ErrStaffInactive = errs.New("staff inactive")
)

type StaffQueries interface {
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error)
}

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedStaffView, string, error)
}

type staffQueriesImpl struct {
	readStore StaffReadStore
}

func NewStaffQueries(readStore StaffReadStore) StaffQueries {
	return &staffQueriesImpl{readStore: readStore}
}

func (q *staffQueriesImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error) {
	s, err := q.readStore.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if !s.IsActive {
		return nil, ErrStaffInactive
	}

	return s, nil
}
