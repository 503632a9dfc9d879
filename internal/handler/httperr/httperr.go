package httperr

import (
	"net/http"

	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first matching entry wins.
var mappings = []mapping{
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header is required"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},
	{errs.ErrIdempotencyConflict, http.StatusConflict, "Idempotency key was used with a different request"},
	{errs.ErrInvalidStay, http.StatusBadRequest, "Invalid stay dates"},
	{errs.ErrInvalidGuestCount, http.StatusBadRequest, "Invalid guest count"},
	{errs.ErrPaymentMethodUnavailable, http.StatusBadRequest, "Payment method is not available"},
	{errs.ErrInvalidWebhook, http.StatusBadRequest, "Invalid webhook"},
	{queries.ErrInvalidStatusFilter, http.StatusBadRequest, "Invalid status filter"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrStaffInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrStaffInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrStaffNotFound, http.StatusNotFound, "Staff not found"},
	{errs.ErrOfferNotFound, http.StatusNotFound, "Room is not offered for the searched stay"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrPageNotFound, http.StatusNotFound, "Page not found"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Booking can no longer change status"},
	{errs.ErrPaymentFailed, http.StatusPaymentRequired, "Payment failed"},
	{errs.ErrStayRequired, http.StatusUnprocessableEntity, "Search for a stay first"},
	{errs.ErrEmptyCart, http.StatusUnprocessableEntity, "Cart is empty"},
	{errs.ErrInsufficientCapacity, http.StatusUnprocessableEntity, "Selected rooms cannot hold all guests"},
	{errs.ErrTooManyRooms, http.StatusUnprocessableEntity, "More rooms than guests"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
	{errs.ErrProviderUnavailable, http.StatusBadGateway, "Upstream provider unavailable"},
}

// Abort maps a use-case error onto the response envelope. Unknown errors
// become 500 without leaking their text.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status < http.StatusInternalServerError {
		if d := errs.Details(err); len(d) > 0 {
			detail = d
		}
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
