package api

import (
	"net/http"
	"strings"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout
// @Description Books the cart with the reservation system and opens a payment. Replays with the same Idempotency-Key return the stored result.
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CheckoutRequest true "Guest details, add-ons and payment method"
// @Success 201 {object} resdto.CheckoutResponse
// @Success 200 {object} resdto.CheckoutResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(middleware.GetLocale(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	key := strings.TrimSpace(c.GetHeader(idempotencyHeader))
	result, err := h.cmds.Checkout(c.Request.Context(), sessionID, in, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	c.Header("Location", "/api/bookings/"+result.Booking.ID.String())
	c.JSON(status, resdto.FromCheckoutResult(result))
}
