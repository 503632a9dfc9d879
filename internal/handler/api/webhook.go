package api

import (
	"io"
	"log/slog"
	"net/http"

	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	payments commands.PaymentCommands
}

func NewWebhookHandler(payments commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{payments: payments}
}

// @Summary Stripe webhook
// @Description Verifies the Stripe-Signature header and applies payment intent events
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Router /api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large", nil)
		return
	}
	err = h.payments.HandleStripeEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		// 5xx makes Stripe retry, 4xx does not
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// @Summary QPay payment callback
// @Description Called by QPay when an invoice is paid. The invoice is re-checked against the gateway, the callback itself is not trusted.
// @Tags webhooks
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} map[string]string
// @Router /api/webhooks/qpay [get]
func (h *WebhookHandler) QPay(c *gin.Context) {
	id, err := uuid.Parse(c.Query("booking_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking_id", nil)
		return
	}
	if _, err := h.payments.CheckPayment(c.Request.Context(), id); err != nil {
		if errs.Is(err, errs.ErrBookingNotFound) {
			httperr.Abort(c, err)
			return
		}
		// the reconciler retries; QPay only needs an acknowledgement
		slog.WarnContext(c.Request.Context(), "qpay callback check failed", "booking_id", id, "error", err.Error())
	}
	c.JSON(http.StatusOK, gin.H{"status": "SUCCESS"})
}
