package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/internal/types"
)

// ErrorHandler recovers panics and renders errors attached with c.Error as
// a JSON error response, unless the handler already wrote a body. A status
// committed by c.AbortWithError is kept; otherwise the error becomes a 500.
// Server errors are logged and their details withheld from the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic serving request",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey))
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
					Error: http.StatusText(http.StatusInternalServerError),
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		err := c.Errors.Last()
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		msg := err.Error()
		if status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"error", err.Err,
				"status", status,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey))
			msg = http.StatusText(status)
		}
		c.JSON(status, types.ErrorResponse{Error: msg})
	}
}
