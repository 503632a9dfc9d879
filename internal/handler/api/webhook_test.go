//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"resort-booking/internal/handler/api"
	"resort-booking/internal/pkg/errs"
	commandsmock "resort-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockPayments *commandsmock.MockPaymentCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	h := api.NewWebhookHandler(s.mockPayments)
	s.router.POST("/api/webhooks/stripe", h.Stripe)
	s.router.GET("/api/webhooks/qpay", h.QPay)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) stripe(payload, signature string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewBufferString(payload))
	req.Header.Set("Stripe-Signature", signature)
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *WebhookHandlerTestSuite) TestStripe() {
	payload := `{"id":"evt_1","type":"payment_intent.succeeded"}`

	s.Run("raw body and signature are passed through", func() {
		s.mockPayments.EXPECT().HandleStripeEvent(gomock.Any(), []byte(payload), "t=1,v1=abc").Return(nil)

		rec := s.stripe(payload, "t=1,v1=abc")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"received":true}`, rec.Body.String())
	})

	s.Run("bad signature is a 400", func() {
		s.mockPayments.EXPECT().HandleStripeEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.WithDetail(errs.Mark(errors.New("sig"), errs.ErrInvalidWebhook), "signature verification failed"))

		rec := s.stripe(payload, "t=1,v1=bad")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("database failure is a 500 so Stripe retries", func() {
		s.mockPayments.EXPECT().HandleStripeEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("tx"), errs.ErrDatabaseOperationFailed))

		rec := s.stripe(payload, "t=1,v1=abc")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("oversized payload", func() {
		rec := s.stripe(strings.Repeat("x", 70<<10), "t=1,v1=abc")
		s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func (s *WebhookHandlerTestSuite) TestQPay() {
	id := uuid.New()

	s.Run("triggers a payment check", func() {
		s.mockPayments.EXPECT().CheckPayment(gomock.Any(), id).Return(nil, nil)

		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/api/webhooks/qpay?booking_id="+id.String(), nil))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("gateway failure is still acknowledged", func() {
		s.mockPayments.EXPECT().CheckPayment(gomock.Any(), id).Return(nil, errs.Mark(errors.New("timeout"), errs.ErrProviderUnavailable))

		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/api/webhooks/qpay?booking_id="+id.String(), nil))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown booking", func() {
		s.mockPayments.EXPECT().CheckPayment(gomock.Any(), id).Return(nil, errs.ErrBookingNotFound)

		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/api/webhooks/qpay?booking_id="+id.String(), nil))

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing booking id", func() {
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/api/webhooks/qpay", nil))

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
