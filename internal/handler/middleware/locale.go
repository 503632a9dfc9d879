package middleware

import (
	"resort-booking/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const ctxLocaleKey = "locale"

// Locale resolves ?lang= first, then Accept-Language.
func Locale(fallback i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := i18n.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"), fallback)
		c.Set(ctxLocaleKey, l)
		c.Header("Content-Language", l.String())
		c.Next()
	}
}

func GetLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(ctxLocaleKey); ok {
		if l, ok := v.(i18n.Locale); ok {
			return l
		}
	}
	return i18n.English
}
