//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/content"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/i18n"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingView(t *testing.T) *queries.BookingView {
	t.Helper()
	v, err := queries.NewBookingView(builder.NewBookingBuilder().MustBuild())
	require.NoError(t, err)
	return v
}

func listItems(n int) []*queries.BookingListItem {
	base := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*queries.BookingListItem, n)
	for i := range out {
		out[i] = &queries.BookingListItem{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}
	return out
}

func TestBookingQueries_GetForGuest(t *testing.T) {
	view := bookingView(t)

	cases := []struct {
		name      string
		email     string
		storeErr  error
		expectErr error
	}{
		{name: "matching email", email: "saraa@example.com"},
		{name: "email is case-insensitive", email: "  Saraa@Example.COM "},
		{name: "wrong email looks like a missing booking", email: "other@example.com", expectErr: errs.ErrBookingNotFound},
		{name: "missing booking", email: "saraa@example.com", storeErr: infra.RepositoryError{Kind: infra.KindNotFound}, expectErr: errs.ErrBookingNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			if tc.storeErr != nil {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, tc.storeErr)
			} else {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			}

			got, err := queries.NewBookingQueries(store).GetForGuest(context.Background(), view.ID, tc.email)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("database failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		dbErr := infra.RepositoryError{Kind: infra.KindDBFailure}
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := queries.NewBookingQueries(store).GetByID(context.Background(), uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingQueries_List(t *testing.T) {
	t.Run("first page with a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := listItems(3)
		status := "paid"
		store.EXPECT().ListFirstPage(gomock.Any(), &status, int32(3)).Return(rows, nil)

		filter, err := queries.ParseStatusFilter("paid")
		require.NoError(t, err)
		got, next, err := queries.NewBookingQueries(store).List(context.Background(), filter, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := listItems(1)
		after := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		store.EXPECT().ListKeyset(gomock.Any(), nil, gomock.Any(), lastID, int32(21)).
			DoAndReturn(func(_ context.Context, _ *string, at time.Time, _ uuid.UUID, _ int32) ([]*queries.BookingListItem, error) {
				assert.True(t, after.Equal(at))
				return rows, nil
			})

		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(after, lastID)}
		got, next, err := queries.NewBookingQueries(store).List(context.Background(), queries.BookingFilter{}, cursor, 20)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).List(context.Background(), queries.BookingFilter{}, &queries.Cursor{After: "nope"}, 20)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListFirstPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, _, err := queries.NewBookingQueries(store).List(context.Background(), queries.BookingFilter{}, nil, 20)
		assert.Error(t, err)
	})
}

func TestParseStatusFilter(t *testing.T) {
	f, err := queries.ParseStatusFilter("")
	require.NoError(t, err)
	assert.Nil(t, f.Status)

	f, err = queries.ParseStatusFilter("pending_payment")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPendingPayment, *f.Status)

	_, err = queries.ParseStatusFilter("refunded")
	assert.ErrorIs(t, err, queries.ErrInvalidStatusFilter)
}

func TestStaffQueries_GetCurrentStaff(t *testing.T) {
	active := builder.NewStaffBuilder().BuildReadModel()
	inactive := builder.NewStaffBuilder().AsInactive().BuildReadModel()

	cases := []struct {
		name      string
		view      *queries.AuthorizedStaffView
		storeErr  error
		expectErr error
	}{
		{name: "active staff", view: active},
		{name: "inactive staff", view: inactive, expectErr: queries.ErrStaffInactive},
		{name: "unknown staff", storeErr: infra.RepositoryError{Kind: infra.KindNotFound}, expectErr: queries.ErrStaffNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockStaffReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(tc.view, tc.storeErr)

			got, err := queries.NewStaffQueries(store).GetCurrentStaff(context.Background(), uuid.New())

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.view, got)
		})
	}
}

func TestContentQueries(t *testing.T) {
	q, err := queries.NewContentQueries(content.DefaultCatalog())
	require.NoError(t, err)

	t.Run("bundle in the requested locale", func(t *testing.T) {
		b, err := q.GetPage(i18n.Mongolian, "booking")
		require.NoError(t, err)
		assert.Equal(t, i18n.Mongolian, b.Locale)
		assert.NotEmpty(t, b.Texts[content.BookingCheckIn])
		assert.NotEmpty(t, b.Texts[content.SiteName])
	})

	t.Run("invalid locale falls back to English", func(t *testing.T) {
		b, err := q.GetPage(i18n.Locale("de"), "home")
		require.NoError(t, err)
		assert.Equal(t, i18n.English, b.Locale)
	})

	t.Run("unknown page", func(t *testing.T) {
		_, err := q.GetPage(i18n.English, "careers")
		assert.ErrorIs(t, err, queries.ErrPageNotFound)
	})

	t.Run("incomplete catalogue is rejected at construction", func(t *testing.T) {
		_, err := queries.NewContentQueries(content.NewCatalog(map[i18n.Locale]map[content.Key]string{
			i18n.English: {content.SiteName: "Lakeside"},
		}))
		assert.ErrorIs(t, err, content.ErrMissingTranslations)
	})
}
