//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/handler/dto/request"
	"resort-booking/internal/handler/dto/response"
	"resort-booking/internal/pkg/cookie"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/authtest"
	"resort-booking/tests/common/builder"
	"resort-booking/tests/common/httptest"
	"resort-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const guestEmail = "saraa@example.com"

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// startSession runs a search for a two-night stay next month and returns the
// booking session cookie.
func (s *bookingSuite) startSession() *http.Cookie {
	t := s.T()
	checkIn := time.Now().AddDate(0, 1, 0)
	body := request.SearchRequest{
		CheckIn:  checkIn.Format(time.DateOnly),
		CheckOut: checkIn.AddDate(0, 0, 2).Format(time.DateOnly),
		Adults:   2,
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/availability/search", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res queries.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Offers, 2)
	require.Equal(t, 2, res.Nights)

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie)
	return sessionCookie
}

func (s *bookingSuite) addRoom(session *http.Cookie, roomTypeID string) queries.CartView {
	t := s.T()
	w := httptest.Perform(t, s.Router, http.MethodPost, "/api/cart/rooms",
		request.AddRoomRequest{RoomTypeID: roomTypeID}, httptest.WithCookies(session))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view queries.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func (s *bookingSuite) checkout(session *http.Cookie, key string, body request.CheckoutRequest) (int, response.CheckoutResponse, http.Header) {
	t := s.T()
	w := httptest.Perform(t, s.Router, http.MethodPost, "/api/checkout", body,
		httptest.WithCookies(session), httptest.WithHeader("Idempotency-Key", key))

	var res response.CheckoutResponse
	if w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w.Code, res, w.Header()
}

func (s *bookingSuite) guestBooking(id uuid.UUID) (int, queries.BookingView) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf("/api/bookings/%s?email=%s", id, guestEmail), nil, "")

	var view queries.BookingView
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	}
	return w.Code, view
}

func (s *bookingSuite) TestQRCheckoutToPaid() {
	s.Run("search, cart, checkout, payment check", func() {
		t := s.T()
		session := s.startSession()

		view := s.addRoom(session, "lake-view")
		require.True(t, view.Feasible)
		require.True(t, view.CanCheckout)
		require.Equal(t, 1, view.RoomCount)

		req := builder.NewCheckoutRequestBuilder().BuildDTO()
		key := uuid.NewString()
		code, created, header := s.checkout(session, key, req)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "/api/bookings/"+created.Booking.ID.String(), header.Get("Location"))
		require.Equal(t, "pending_payment", created.Booking.Status)
		require.NotNil(t, created.Invoice)
		require.Len(t, s.Resort.Reservations, 1)

		// A retry with the same key replays the first answer.
		code, replayed, header := s.checkout(session, key, req)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "true", header.Get("Idempotent-Replayed"))
		require.Equal(t, created.Booking.ID, replayed.Booking.ID)
		require.Len(t, s.Resort.Reservations, 1)

		// The cart is emptied once a booking exists.
		w := httptest.Perform(t, s.Router, http.MethodGet, "/api/cart", nil, httptest.WithCookies(session))
		require.Equal(t, http.StatusOK, w.Code)
		var cartView queries.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartView))
		require.Empty(t, cartView.Lines)

		code, _ = s.guestBooking(created.Booking.ID)
		require.Equal(t, http.StatusOK, code)

		s.Resort.MarkPaid()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/bookings/%s/payment/check?email=%s", created.Booking.ID, guestEmail), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		_, paid := s.guestBooking(created.Booking.ID)
		require.Equal(t, "paid", paid.Status)
		require.Equal(t, []string{created.Booking.ReservationID}, s.Resort.Confirmed)
	})

	s.Run("gateway callback settles the booking", func() {
		t := s.T()
		session := s.startSession()
		s.addRoom(session, "family-ger")

		code, created, _ := s.checkout(session, uuid.NewString(), builder.NewCheckoutRequestBuilder().WithoutAddOns().BuildDTO())
		require.Equal(t, http.StatusCreated, code)

		s.Resort.MarkPaid()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/webhooks/qpay?booking_id="+created.Booking.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		_, paid := s.guestBooking(created.Booking.ID)
		require.Equal(t, "paid", paid.Status)
	})
}

func (s *bookingSuite) TestCheckoutRejections() {
	s.Run("empty cart", func() {
		session := s.startSession()
		code, _, _ := s.checkout(session, uuid.NewString(), builder.NewCheckoutRequestBuilder().BuildDTO())
		require.Equal(s.T(), http.StatusUnprocessableEntity, code)
	})

	s.Run("card payments switched off", func() {
		session := s.startSession()
		s.addRoom(session, "lake-view")
		code, _, _ := s.checkout(session, uuid.NewString(), builder.NewCheckoutRequestBuilder().WithMethod("card").BuildDTO())
		require.Equal(s.T(), http.StatusBadRequest, code)
	})

	s.Run("missing idempotency key", func() {
		session := s.startSession()
		s.addRoom(session, "lake-view")
		code, _, _ := s.checkout(session, "", builder.NewCheckoutRequestBuilder().BuildDTO())
		require.Equal(s.T(), http.StatusBadRequest, code)
	})

	s.Run("wrong email hides the booking", func() {
		t := s.T()
		session := s.startSession()
		s.addRoom(session, "lake-view")
		_, created, _ := s.checkout(session, uuid.NewString(), builder.NewCheckoutRequestBuilder().BuildDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/bookings/%s?email=someone@example.com", created.Booking.ID), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestStaffDesk() {
	s.Run("list, confirm and cancel", func() {
		t := s.T()

		var ids []uuid.UUID
		for range 2 {
			session := s.startSession()
			s.addRoom(session, "lake-view")
			code, created, _ := s.checkout(session, uuid.NewString(), builder.NewCheckoutRequestBuilder().BuildDTO())
			require.Equal(t, http.StatusCreated, code)
			ids = append(ids, created.Booking.ID)
		}

		operator := authtest.CreateAndLogin(t, s.DB, s.Router, "desk@example.com", staff.RoleOperator)
		viewer := authtest.CreateAndLogin(t, s.DB, s.Router, "viewer@example.com", staff.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings?status=pending_payment&limit=1", nil, viewer)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var page response.BookingListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Items, 1)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/admin/bookings?status=pending_payment&limit=1&after="+page.NextCursor, nil, viewer)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var second response.BookingListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
		require.Len(t, second.Items, 1)
		require.NotEqual(t, page.Items[0].ID, second.Items[0].ID)

		// Viewers read, operators act.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/bookings/%s/confirm-payment", ids[0]), nil, viewer)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/bookings/%s/confirm-payment", ids[0]), request.ConfirmPaymentRequest{Note: "paid at the front desk"}, operator)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		_, confirmed := s.guestBooking(ids[0])
		require.Equal(t, "paid", confirmed.Status)
		require.Equal(t, "manual", confirmed.PaidVia)

		// A paid booking can no longer be cancelled.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/bookings/%s/cancel", ids[0]), request.CancelBookingRequest{Reason: "duplicate"}, operator)
		require.Equal(t, http.StatusConflict, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/bookings/%s/cancel", ids[1]), request.CancelBookingRequest{Reason: "guest called"}, operator)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		_, cancelled := s.guestBooking(ids[1])
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, []string{cancelled.ReservationID}, s.Resort.Cancelled)
	})
}
