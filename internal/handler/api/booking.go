package api

import (
	"net/http"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves both the guest-facing booking page and the staff
// back office.
type BookingHandler struct {
	payments commands.PaymentCommands
	q        queries.BookingQueries
}

func NewBookingHandler(payments commands.PaymentCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{payments: payments, q: q}
}

// @Summary Get booking
// @Description Guest view of a booking; the email must match the booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param email query string true "Guest email"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetForGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.GuestBookingQuery
	if !bindQuery(c, &query) {
		return
	}
	view, err := h.q.GetForGuest(c.Request.Context(), id, query.Email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Check payment
// @Description Polls the QR gateway for the booking's invoice and returns the updated booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param email query string true "Guest email"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings/{id}/payment/check [post]
func (h *BookingHandler) CheckPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.GuestBookingQuery
	if !bindQuery(c, &query) {
		return
	}
	if _, err := h.q.GetForGuest(c.Request.Context(), id, query.Email); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.payments.CheckPayment(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List bookings
// @Description Newest first, keyset paginated
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending_payment, paid or cancelled"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := queries.ParseStatusFilter(query.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}
	items, next, err := h.q.List(c.Request.Context(), filter, cursor, queries.ValidateLimit(query.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Get booking (staff)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Confirm payment manually
// @Description Marks a pending booking paid, e.g. after a bank transfer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmPaymentRequest false "Note"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{id}/confirm-payment [post]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	staffID, ok := requireStaff(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmPaymentRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	view, err := h.payments.ConfirmPayment(c.Request.Context(), id, staffID, req.Note)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel booking
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Reason"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	staffID, ok := requireStaff(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.payments.Cancel(c.Request.Context(), id, staffID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
