package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"car-rental/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler aborted without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if len(c.Errors) > 0 {
			slog.ErrorContext(c.Request.Context(), "request failed without a public error",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"errors", c.Errors.String())
			c.JSON(http.StatusInternalServerError, httperr.New(c, http.StatusInternalServerError, "", "Internal server error", nil))
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", rec,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(c, http.StatusInternalServerError, "", "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
