//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase"
	"car-rental/tests/common/authtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	} `json:"error"`
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.LoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	engine.Use(middleware.ErrorHandler())
	return engine
}

func decode(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func TestRequestID(t *testing.T) {
	engine := newEngine()
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("incoming id is echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-123")
		engine.ServeHTTP(w, req)

		assert.Equal(t, "trace-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-123", w.Body.String())
	})

	t.Run("missing or oversized id is replaced", func(t *testing.T) {
		for _, incoming := range []string{"", strings.Repeat("x", 65)} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, incoming)
			}
			engine.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, incoming, got)
			assert.Equal(t, got, w.Body.String())
		}
	})
}

func TestErrorHandler_PrivateErrorBecomesInternal(t *testing.T) {
	engine := newEngine()
	engine.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "internal_server_error", body.Error.Code)
	assert.Equal(t, "req-1", body.Error.RequestID)
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/panic", func(*gin.Context) {
		panic("lost the fleet")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w).Error.Message)
}

func TestCORSExposesLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	engine.GET("/cars", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Location")
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.NewTestConfig().JWT
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.Secret, time.Hour)))
	helper := authtest.NewJWTHelper(cfg)
	customerID := uuid.New()

	engine := newEngine()
	whoami := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id.String())
	}
	engine.GET("/optional", auth.OptionalAuth(), whoami)
	engine.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(jwt.RoleAdmin), whoami)

	testCases := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{name: "optional: no token", path: "/optional", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "optional: bad token is ignored", path: "/optional", token: "garbage", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "optional: valid token", path: "/optional", token: helper.GenerateToken(t, customerID, jwt.RoleCustomer), wantStatus: http.StatusOK, wantBody: customerID.String()},
		{name: "admin: no token", path: "/admin", wantStatus: http.StatusUnauthorized},
		{name: "admin: expired token", path: "/admin", token: helper.CreateExpiredToken(t, customerID, jwt.RoleAdmin), wantStatus: http.StatusUnauthorized},
		{name: "admin: customer is forbidden", path: "/admin", token: helper.GenerateToken(t, customerID, jwt.RoleCustomer), wantStatus: http.StatusForbidden},
		{name: "admin: admin passes", path: "/admin", token: helper.GenerateToken(t, customerID, jwt.RoleAdmin), wantStatus: http.StatusOK, wantBody: customerID.String()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
		})
	}
}
