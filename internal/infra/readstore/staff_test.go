//go:build unit

package readstore

import (
	"context"
	"testing"

	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStaffReadQueries struct {
	mock.Mock
}

func (m *MockStaffReadQueries) GetStaffByEmail(ctx context.Context, db db.DBTX, email string) (pgquery.Staff, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(pgquery.Staff), args.Error(1)
}

func (m *MockStaffReadQueries) GetStaffByID(ctx context.Context, db db.DBTX, id uuid.UUID) (pgquery.Staff, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.Staff), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	activeStaff := builder.NewStaffBuilder().BuildRow()
	inactiveStaff := builder.NewStaffBuilder().WithEmail("gone@example.com").AsInactive().BuildRow()

	tests := []struct {
		name       string
		email      string
		queryEmail string
		mockReturn pgquery.Staff
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active staff",
			email:      activeStaff.Email,
			queryEmail: activeStaff.Email,
			mockReturn: activeStaff,
			wantHash:   activeStaff.PasswordHash,
		},
		{
			name:       "success - email is normalised",
			email:      "  FrontDesk@Example.com ",
			queryEmail: activeStaff.Email,
			mockReturn: activeStaff,
			wantHash:   activeStaff.PasswordHash,
		},
		{
			name:       "success - inactive staff (for validation)",
			email:      inactiveStaff.Email,
			queryEmail: inactiveStaff.Email,
			mockReturn: inactiveStaff,
			wantHash:   inactiveStaff.PasswordHash,
		},
		{
			name:       "staff not found",
			email:      "notfound@example.com",
			queryEmail: "notfound@example.com",
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      activeStaff.Email,
			queryEmail: activeStaff.Email,
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockStaffReadQueries)
			mockQueries.On("GetStaffByEmail", mock.Anything, mock.Anything, tt.queryEmail).Return(tt.mockReturn, tt.mockError)

			readStore := NewStaffReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockReturn.Email, view.Email)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	row := builder.NewStaffBuilder().WithRole("admin").BuildRow()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockStaffReadQueries)
		mockQueries.On("GetStaffByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewStaffReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		assert.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, "admin", view.Role)
		mockQueries.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockStaffReadQueries)
		mockQueries.On("GetStaffByID", mock.Anything, mock.Anything, id).Return(pgquery.Staff{}, pgx.ErrNoRows)

		view, err := NewStaffReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
