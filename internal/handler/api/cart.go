package api

import (
	"net/http"

	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
}

func NewCartHandler(cmds commands.CartCommands) *CartHandler {
	return &CartHandler{cmds: cmds}
}

func (h *CartHandler) respond(c *gin.Context, view *queries.CartView, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cart summary
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /api/cart [get]
func (h *CartHandler) Summary(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.cmds.Summary(c.Request.Context(), sessionID, middleware.GetLocale(c))
	h.respond(c, view, err)
}

// @Summary Add room
// @Description Adds one room of a type offered by the latest search
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddRoomRequest true "Room type"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/rooms [post]
func (h *CartHandler) AddRoom(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.AddRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.AddRoom(c.Request.Context(), sessionID, middleware.GetLocale(c), req.RoomTypeID)
	h.respond(c, view, err)
}

// @Summary Remove room line
// @Tags cart
// @Produce json
// @Param roomTypeId path string true "Room type"
// @Success 200 {object} queries.CartView
// @Router /api/cart/rooms/{roomTypeId} [delete]
func (h *CartHandler) RemoveRoom(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.cmds.RemoveRoom(c.Request.Context(), sessionID, middleware.GetLocale(c), c.Param("roomTypeId"))
	h.respond(c, view, err)
}

// @Summary Change room quantity
// @Description Quantity is clamped between one and the rooms still available
// @Tags cart
// @Accept json
// @Produce json
// @Param roomTypeId path string true "Room type"
// @Param request body reqdto.UpdateQuantityRequest true "Delta"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} httperr.Response
// @Router /api/cart/rooms/{roomTypeId} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.UpdateQuantity(c.Request.Context(), sessionID, middleware.GetLocale(c), c.Param("roomTypeId"), req.Delta)
	h.respond(c, view, err)
}

// @Summary Set guest counts
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.SetGuestsRequest true "Guests"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} httperr.Response
// @Router /api/cart/guests [put]
func (h *CartHandler) SetGuests(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.SetGuestsRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.SetGuests(c.Request.Context(), sessionID, middleware.GetLocale(c), req.Adults, req.Children)
	h.respond(c, view, err)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.cmds.Clear(c.Request.Context(), sessionID, middleware.GetLocale(c))
	h.respond(c, view, err)
}
