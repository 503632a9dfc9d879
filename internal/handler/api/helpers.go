package api

import (
	"errors"
	"net/http"

	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/handler/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNoSession = errors.New("session middleware not installed")
	errNoStaff   = errors.New("staff context missing")
)

func requireSession(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
	}
	return id, ok
}

func requireStaff(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoStaff, "Unauthorized", nil)
	}
	return id, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Details(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", validation.Details(err))
		return false
	}
	return true
}
