package middleware

import (
	"log/slog"
	"net/http"

	"hotel-booking-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the fallback for handlers that aborted without writing a
// body. Handlers normally respond via httperr.AbortWithError; this catches
// anything that slipped through.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			c.JSON(status, httperr.Response{Success: false, Message: http.StatusText(status)})
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.Response{Success: false, Message: "Internal server error"})
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{Success: false, Message: "Internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
