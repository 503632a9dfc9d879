package cookie

import (
	"net/http"
	"time"

	"resort-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "staff_access_token"
	SessionCookieName     = "booking_session"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, int(expiry.Seconds()))
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func SetSession(c *gin.Context, cfg config.CookieConfig, sessionID string, ttl time.Duration) {
	set(c, cfg, SessionCookieName, sessionID, int(ttl.Seconds()))
}

func GetSession(c *gin.Context) string {
	id, _ := c.Cookie(SessionCookieName)
	return id
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
