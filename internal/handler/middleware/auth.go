package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errTokenRequired     = errors.New("access token required")
	errInsufficientScope = errors.New("insufficient permissions")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var roleHierarchy = map[jwt.Role]int{
	jwt.RoleCustomer: 1,
	jwt.RoleAdmin:    2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole jwt.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole jwt.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("role missing from context"), "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientScope, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("ignoring invalid optional token", "error", err.Error())
			c.Next()
			return
		}

		setIdentity(c, userID, role)
		c.Next()
	}
}

func setIdentity(c *gin.Context, userID uuid.UUID, role jwt.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"user_id": userID.String(),
		"role":    string(role),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (jwt.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(jwt.Role)
	return role, ok
}
