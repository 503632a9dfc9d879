//go:build unit

package api_test

import (
	"net/http"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/handler/validation"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var testStaffID = uuid.MustParse("6f1c2d7e-3b54-4c1a-9a0e-0d2b7f5c1e11")

// newTestRouter mirrors the production middleware that handlers depend on.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Register()
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	cfg := config.NewTestConfig()
	r.Use(middleware.Locale(i18n.English))
	r.Use(middleware.Session(cfg.Cookie, cfg.Session))
	return r
}

// fakeAuth authenticates any request carrying an Authorization header with
// the given role.
func fakeAuth(role staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetStaff(c, testStaffID, role)
		c.Next()
	}
}
