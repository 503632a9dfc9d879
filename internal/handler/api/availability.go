package api

import (
	"net/http"

	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Search availability
// @Description Fetches room offers for a stay and remembers them in the visitor session
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.SearchRequest true "Stay and guests"
// @Success 200 {object} queries.SearchResult
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/availability/search [post]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.SearchRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.q.Search(c.Request.Context(), sessionID, req.ToInput(middleware.GetLocale(c)))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
