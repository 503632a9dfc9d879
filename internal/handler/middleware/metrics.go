package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type RequestObserver interface {
	Observe(method, route string, status int, d time.Duration)
}

func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		obs.Observe(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
