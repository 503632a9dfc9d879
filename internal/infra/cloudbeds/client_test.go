//go:build unit

package cloudbeds_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"resort-booking/internal/domain/guest"
	"resort-booking/internal/domain/stay"
	"resort-booking/internal/infra/cloudbeds"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cloudbeds.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := cloudbeds.NewClient(config.CloudbedsConfig{
		BaseURL:    srv.URL,
		APIKey:     "cb-key",
		PropertyID: "prop-1",
		Timeout:    time.Second,
	})
	require.NoError(t, err)
	return client
}

func testStay() stay.Stay {
	in := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	return stay.Reconstruct(in, in.AddDate(0, 0, 2))
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := cloudbeds.NewClient(config.CloudbedsConfig{PropertyID: "p"})
	assert.Error(t, err)
	_, err = cloudbeds.NewClient(config.CloudbedsConfig{APIKey: "k"})
	assert.Error(t, err)
}

func TestFetchAvailability(t *testing.T) {
	t.Run("maps room types and skips unusable ones", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/getAvailableRoomTypes", r.URL.Path)
			assert.Equal(t, "cb-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "prop-1", r.URL.Query().Get("propertyIDs"))
			assert.Equal(t, "2026-07-10", r.URL.Query().Get("startDate"))
			assert.Equal(t, "2026-07-12", r.URL.Query().Get("endDate"))
			_, _ = io.WriteString(w, `{"success":true,"data":[{"propertyID":"prop-1","propertyRooms":[
				{"roomTypeID":"A","roomTypeName":"Lake view","roomRate":125000.5,"maxGuests":"2","roomsAvailable":3},
				{"roomTypeID":"B","roomTypeName":"Sold out","roomRate":90000,"maxGuests":2,"roomsAvailable":0},
				{"roomTypeID":"C","roomTypeName":"Broken","roomRate":"80000","maxGuests":0,"roomsAvailable":2}
			]}]}`)
		})

		offers, err := client.FetchAvailability(context.Background(), testStay(), "MNT")
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, "A", offers[0].RoomTypeID)
		assert.Equal(t, "Lake view", offers[0].Name)
		assert.Equal(t, 2, offers[0].MaxGuests)
		assert.Equal(t, 3, offers[0].RoomsAvailable)
		assert.Equal(t, "MNT", offers[0].Currency)
		assert.True(t, offers[0].RatePerNight.Equal(decimal.RequireFromString("125000.5")))
	})

	t.Run("server error is a provider failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.FetchAvailability(context.Background(), testStay(), "MNT")
		assert.True(t, errs.Is(err, errs.ErrProviderUnavailable))
	})

	t.Run("success false is a provider failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":false,"message":"invalid dates"}`)
		})

		_, err := client.FetchAvailability(context.Background(), testStay(), "MNT")
		assert.True(t, errs.Is(err, errs.ErrProviderUnavailable))
		assert.Contains(t, err.Error(), "invalid dates")
	})
}

func TestCreateReservation(t *testing.T) {
	var form url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/postReservation", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		_, _ = io.WriteString(w, `{"success":true,"reservationID":"CB-77","status":"not_confirmed"}`)
	})

	res, err := client.CreateReservation(context.Background(), shared.ReservationRequest{
		Reference: "LR-ABC123",
		Guest: guest.Reconstruct(guest.Input{
			FirstName: "Saraa", LastName: "Bold", Email: "saraa@example.com",
			Phone: "+97699112233", Country: "MN", SpecialRequests: "late arrival",
		}),
		Stay: testStay(),
		Rooms: []shared.ReservationRoom{
			{RoomTypeID: "A", Quantity: 1, Adults: 2},
			{RoomTypeID: "A", Quantity: 1, Adults: 1, Children: 1},
		},
		Total:    decimal.NewFromInt(500000),
		Currency: "MNT",
	})
	require.NoError(t, err)
	assert.Equal(t, "CB-77", res.ReservationID)

	assert.Equal(t, "prop-1", form.Get("propertyID"))
	assert.Equal(t, "LR-ABC123", form.Get("thirdPartyIdentifier"))
	assert.Equal(t, "late arrival", form.Get("customerNotes"))
	assert.Equal(t, "1", form.Get("rooms[0][quantity]"))
	assert.Equal(t, "1", form.Get("rooms[1][quantity]"))
	assert.Equal(t, "2", form.Get("adults[0][quantity]"))
	assert.Equal(t, "1", form.Get("adults[1][quantity]"))
	assert.Equal(t, "0", form.Get("children[0][quantity]"))
	assert.Equal(t, "1", form.Get("children[1][quantity]"))
}

func TestCreateReservation_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	_, err := client.CreateReservation(context.Background(), shared.ReservationRequest{
		Stay:  testStay(),
		Rooms: []shared.ReservationRoom{{RoomTypeID: "A", Quantity: 1, Adults: 1}},
	})
	assert.True(t, errs.Is(err, errs.ErrProviderUnavailable))
}

func TestConfirmReservation(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/putReservation", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "CB-77", r.PostForm.Get("reservationID"))
		assert.Equal(t, "confirmed", r.PostForm.Get("status"))
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	require.NoError(t, client.ConfirmReservation(context.Background(), "CB-77"))
	assert.True(t, called)

	assert.Error(t, client.ConfirmReservation(context.Background(), ""))
}

func TestCancelReservation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/putReservation", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "CB-77", r.PostForm.Get("reservationID"))
		assert.Equal(t, "canceled", r.PostForm.Get("status"))
		_, _ = io.WriteString(w, `{"success":false,"message":"Reservation already checked in"}`)
	})

	err := client.CancelReservation(context.Background(), "CB-77")

	assert.True(t, errs.Is(err, errs.ErrProviderUnavailable))
	assert.ErrorContains(t, err, "already checked in")
}
