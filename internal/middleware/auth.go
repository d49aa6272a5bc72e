package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskhive_backend/internal/auth"
	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/models"
	"taskhive_backend/pkg/apperrors"
)

const (
	// ContextUserIDKey holds the authenticated actor id in the gin context.
	ContextUserIDKey = "userID"
	// ContextRoleKey holds the authenticated actor role.
	ContextRoleKey = "role"
	// ContextUsernameKey holds the authenticated username.
	ContextUsernameKey = "username"
)

// AuthMiddleware validates the Bearer token and stores the actor identity
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Authorization header must be a Bearer token")
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			if err == auth.ErrTokenExpired {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextUserIDKey, claims.ActorID)
		c.Set(ContextRoleKey, string(claims.Role))
		c.Set(ContextUsernameKey, claims.Username)
		c.Request = c.Request.WithContext(logger.WithActorID(c.Request.Context(), claims.ActorID))
		c.Next()
	}
}

// RoleMiddleware restricts a route group to one actor role. It must run
// after AuthMiddleware.
func RoleMiddleware(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetString(ContextRoleKey)
		if got != string(role) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("This action is not available for your role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	apperrors.HandleError(c, apperrors.NewUnauthorizedError(message))
	c.Abort()
}
