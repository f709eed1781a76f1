package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"car-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	requestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

type requestLogger struct {
	logger *slog.Logger
}

// LoggingMiddleware logs one line when a request starts and one when it completes.
// Completion lines carry the caller identity resolved by the auth middleware.
func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	l := &requestLogger{logger: logger}
	return l.handle
}

func (l *requestLogger) handle(c *gin.Context) {
	startTime := time.Now()

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" || len(requestID) > 64 {
		requestID = newRequestID(startTime)
	}
	c.Set(requestIDKey, requestID)
	c.Header(RequestIDHeader, requestID)

	logAttrs := []slog.Attr{
		slog.String("request_id", requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("client_ip", c.ClientIP()),
	}
	if route := c.FullPath(); route != "" {
		logAttrs = append(logAttrs, slog.String("route", route))
	}
	if id := c.Param("id"); id != "" {
		logAttrs = append(logAttrs, slog.String("resource_id", id))
	}

	l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "request started", logAttrs...)

	c.Next()

	statusCode := c.Writer.Status()
	responseAttrs := append(logAttrs,
		slog.Int("status_code", statusCode),
		slog.Duration("duration", time.Since(startTime)),
	)
	if userID, ok := GetUserID(c); ok {
		responseAttrs = append(responseAttrs, slog.String("user_id", userID.String()))
	}
	if role, ok := GetUserRole(c); ok {
		responseAttrs = append(responseAttrs, slog.String("role", string(role)))
	}
	if size := c.Writer.Size(); size > 0 {
		responseAttrs = append(responseAttrs, slog.Int("response_size", size))
	}
	if len(c.Errors) > 0 {
		responseAttrs = append(responseAttrs, slog.String("errors", c.Errors.String()))
	}

	level := slog.LevelInfo
	switch {
	case statusCode >= 500:
		level = slog.LevelError
	case statusCode == 409:
		// booking races are expected traffic
		level = slog.LevelInfo
	case statusCode >= 400:
		level = slog.LevelWarn
	}

	l.logger.LogAttrs(context.WithoutCancel(c.Request.Context()), level, "request completed", responseAttrs...)
}

// NewLogger builds the process logger from LogConfig and installs it as the slog default.
// Release mode logs JSON, everything else logs text.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && cfg.TimeFormat != "" {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With("service", "car-rental")
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func newRequestID(now time.Time) string {
	timestamp := now.UTC().Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, now.UnixNano()%100000000)
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
