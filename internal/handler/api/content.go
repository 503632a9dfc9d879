package api

import (
	"net/http"

	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	q queries.ContentQueries
}

func NewContentHandler(q queries.ContentQueries) *ContentHandler {
	return &ContentHandler{q: q}
}

// @Summary Localized page content
// @Description Returns every text key of a page in the resolved locale
// @Tags content
// @Produce json
// @Param page path string true "Page (home, about, amenities, dining, gallery, contact, booking)"
// @Param lang query string false "Locale (en, mn)"
// @Success 200 {object} resdto.ContentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/content/{page} [get]
func (h *ContentHandler) GetPage(c *gin.Context) {
	bundle, err := h.q.GetPage(middleware.GetLocale(c), c.Param("page"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, resdto.FromBundle(bundle))
}
