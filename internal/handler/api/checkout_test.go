//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"resort-booking/internal/domain/payment"
	"resort-booking/internal/handler/api"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/i18n"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	"resort-booking/tests/common/httptest"
	"resort-booking/tests/common/testutil"
	commandsmock "resort-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.router.POST("/api/checkout", api.NewCheckoutHandler(s.mockCommands).Checkout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func checkoutResult(t *testing.T) *commands.CheckoutResult {
	view, err := queries.NewBookingView(builder.NewBookingBuilder().MustBuild())
	if err != nil {
		t.Fatal(err)
	}
	return &commands.CheckoutResult{
		Booking: view,
		Invoice: &payment.Invoice{ID: "INV-1", QRText: "0002010102", ShortURL: "https://s.qpay.mn/x"},
	}
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/api/checkout"
	reqBody := builder.NewCheckoutRequestBuilder().BuildDTO()
	key := uuid.NewString()
	headers := map[string]string{"Idempotency-Key": key}

	s.Run("success: 201 with invoice and location", func() {
		result := checkoutResult(s.T())
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), key).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CheckoutInput, _ string) (*commands.CheckoutResult, error) {
				s.Equal("Saraa", in.Guest.FirstName)
				s.Equal("MN", in.Guest.Country)
				s.Equal("qpay", in.PaymentMethod)
				s.Equal(i18n.English, in.Locale)
				s.Len(in.AddOns, 1)
				s.Equal("breakfast", in.AddOns[0].Code)
				return result, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.Booking.Reference, body.Booking.Reference)
		s.Equal("INV-1", body.Invoice.ID)
		s.Nil(body.CardIntent)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + result.Booking.ID.String()})
	})

	s.Run("replay: 200 with replay header", func() {
		result := checkoutResult(s.T())
		result.IsReplayed = true
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), key).Return(result, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("form locale wins over the request locale", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CheckoutInput, _ string) (*commands.CheckoutResult, error) {
				s.Equal(i18n.Mongolian, in.Locale)
				return checkoutResult(s.T()), nil
			})

		body := builder.NewCheckoutRequestBuilder().WithLocale("mn-MN").BuildDTO()
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url+"?lang=en", body, headers)
		s.Equal(http.StatusCreated, rec.Code)
	})

	validation := []struct {
		name   string
		mutate testutil.Mutation
	}{
		{name: "missing guest", mutate: testutil.Field("guest", nil)},
		{name: "unknown payment method", mutate: testutil.Field("payment_method", "cash")},
		{name: "unsupported locale", mutate: testutil.Field("locale", "de")},
		{name: "bad guest email", mutate: testutil.Nested("guest", testutil.Field("email", "not-an-email"))},
		{name: "add-on without quantity", mutate: testutil.Field("add_ons", []map[string]any{{"code": "sauna"}})},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), headers)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	failures := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "missing idempotency key", err: errs.ErrIdempotencyKeyRequired, expectCode: http.StatusBadRequest, expectMsg: "Idempotency-Key"},
		{name: "in progress", err: errs.ErrIdempotencyInProgress, expectCode: http.StatusConflict, expectMsg: "being processed"},
		{name: "key reused", err: errs.ErrIdempotencyConflict, expectCode: http.StatusConflict, expectMsg: "different request"},
		{name: "empty cart", err: errs.ErrEmptyCart, expectCode: http.StatusUnprocessableEntity, expectMsg: "Cart is empty"},
		{name: "no search", err: errs.ErrStayRequired, expectCode: http.StatusUnprocessableEntity, expectMsg: "Search"},
		{
			name:       "capacity shortfall",
			err:        errs.WithDetail(errs.Mark(errors.New("short"), errs.ErrInsufficientCapacity), "rooms hold 2 guests, 1 more needed"),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "cannot hold",
		},
		{name: "card disabled", err: errs.ErrPaymentMethodUnavailable, expectCode: http.StatusBadRequest, expectMsg: "not available"},
		{name: "reservation system down", err: errs.Mark(errors.New("503"), errs.ErrProviderUnavailable), expectCode: http.StatusBadGateway, expectMsg: "Upstream"},
		{name: "database", err: errs.Mark(errors.New("tx"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Internal"},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("shortfall detail is returned", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.WithDetail(errs.Mark(errors.New("short"), errs.ErrInsufficientCapacity), "rooms hold 2 guests, 1 more needed"))

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
		httptest.AssertErrorDetail(s.T(), rec, "1 more needed")
	})
}
