package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/repository"
	"github.com/parakita/backoffice/internal/service"
	ctxutil "github.com/parakita/backoffice/pkg/context"
	"github.com/parakita/backoffice/pkg/logger"
	"go.uber.org/zap"
)

// Gin context keys set by RequireAuth
const (
	ContextUserID      = "user_id"
	ContextEmail       = "email"
	ContextPermissions = "permissions"
)

type JWTMiddleware struct {
	tokenSvc *service.TokenService
	users    *repository.UserRepository
}

func NewJWTMiddleware(tokenSvc *service.TokenService, users *repository.UserRepository) *JWTMiddleware {
	return &JWTMiddleware{tokenSvc: tokenSvc, users: users}
}

// RequireAuth validates the bearer token, re-checks the account against
// the database so blocked or deleted users are cut off immediately, and
// stores the actor in both the gin and request contexts.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.GetLogger().Warn("missing Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			abortUnauthorized(c)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.GetLogger().Warn("invalid Authorization header format",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			abortUnauthorized(c)
			return
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			logger.GetLogger().Warn("invalid or expired token",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			abortUnauthorized(c)
			return
		}

		user, err := m.users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil || user == nil || user.ID != claims.UserID {
			logger.GetLogger().Warn("token user not found",
				zap.String("user_id", claims.UserID),
				zap.String("path", c.Request.URL.Path))
			abortUnauthorized(c)
			return
		}
		if user.IsBlocked {
			logger.GetLogger().Warn("blocked user presented a valid token",
				zap.String("user_id", user.ID))
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextPermissions, claims.Permissions)

		ctx := ctxutil.WithActor(c.Request.Context(), claims.UserID, claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequirePermission gates a route on one claim value. Must run after
// RequireAuth.
func (m *JWTMiddleware) RequirePermission(claim string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(ContextPermissions)
		if !exists {
			abortUnauthorized(c)
			return
		}

		permissions, ok := raw.([]string)
		if !ok || !containsClaim(permissions, claim) {
			logger.GetLogger().Warn("permission denied",
				zap.String("user_id", c.GetString(ContextUserID)),
				zap.String("claim", claim),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusForbidden, constants.BuildErrorResponse("Forbidden", nil))
			c.Abort()
			return
		}

		c.Next()
	}
}

func containsClaim(permissions []string, claim string) bool {
	for _, p := range permissions {
		if p == claim {
			return true
		}
	}
	return false
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Unauthorized", nil))
	c.Abort()
}
