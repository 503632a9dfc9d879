package middleware

import (
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// Session gives every visitor a session id cookie. The cookie is refreshed on
// each request so the TTL slides with activity, matching the Redis record.
func Session(cookieCfg config.CookieConfig, sessionCfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(cookie.GetSession(c))
		if err != nil {
			id = uuid.New()
		}
		cookie.SetSession(c, cookieCfg, id.String(), sessionCfg.TTL)
		c.Set(ctxSessionIDKey, id)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
