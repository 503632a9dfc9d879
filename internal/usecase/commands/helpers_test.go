//go:build unit

package commands_test

import (
	"context"
	"time"

	"resort-booking/internal/usecase/shared"
	sharedmock "resort-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

// uowMocks wires a unit of work whose Within runs the callback against a
// mocked transaction.
type uowMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	staff    *sharedmock.MockStaffRepository
}

func newUowMocks(ctrl *gomock.Controller) *uowMocks {
	m := &uowMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		staff:    sharedmock.NewMockStaffRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Staff().Return(m.staff).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}
