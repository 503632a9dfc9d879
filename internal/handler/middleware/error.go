package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the error envelope for handlers that recorded an
// error with c.Error but wrote nothing. Public errors carry their own
// envelope; anything else is classified the same way httperr.Abort does.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			// status set without a body, e.g. c.Status(204)
			c.Writer.WriteHeaderNow()
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status, msg := httperr.Classify(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		if status < http.StatusInternalServerError {
			if d := errs.Details(last.Err); len(d) > 0 {
				resp.Detail = d
			}
		} else {
			slog.ErrorContext(c.Request.Context(), "unhandled error",
				"error", last.Err,
				"request_id", GetRequestID(c),
				"route", c.FullPath(),
				"method", c.Request.Method)
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"route", c.FullPath(),
					"method", c.Request.Method,
					"stack", string(debug.Stack()))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
