//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/infra/repository"
	"resort-booking/tests/common/builder"
	repositorymock "resort-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx db.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ db.DBTX, row pgquery.Booking) error {
						assert.Equal(t, b.ID(), row.ID)
						assert.Equal(t, b.Reference(), row.Reference)
						assert.Equal(t, "pending_payment", row.Status)
						assert.JSONEq(t, `[{"room_type_id":"A","name":"Lake view","rate_per_night":"100000","adults":2,"children":0}]`, string(row.Rooms))
						return nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx db.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate payment reference",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx db.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Update Booking Tests
// =============================================================================

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking updated",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx db.DBTX) {
				mock.EXPECT().UpdateBooking(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ db.DBTX, row pgquery.Booking) (int64, error) {
						assert.Equal(t, "qr-123", row.PaymentRef.String)
						return 1, nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx db.DBTX) {
				mock.EXPECT().UpdateBooking(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx db.DBTX) {
				mock.EXPECT().UpdateBooking(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b, err := builder.NewBookingBuilder().WithPaymentRef("qr-123").BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Update(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// mockDBTX is a mock implementation of db.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
