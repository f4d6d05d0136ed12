package utils

import (
	"HelpDesk/model"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity is the authenticated caller, passed explicitly into services
// instead of being looked up from shared session state.
type Identity struct {
	UserID   uint64
	Username string
	Role     model.RoleName
}

// AuthMiddleware verifies JWT and sets user context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		claims, err := VerifyToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Set("username", claims.Username)
		c.Set("user_id", claims.UserId)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// CurrentIdentity reads the caller identity set by AuthMiddleware.
func CurrentIdentity(c *gin.Context) Identity {
	return Identity{
		UserID:   c.MustGet("user_id").(uint64),
		Username: c.GetString("username"),
		Role:     c.MustGet("role").(model.RoleName),
	}
}

// RequireModerator rejects callers without moderator capability.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.MustGet("role").(model.RoleName)
		if !ok || !role.IsModerator() {
			c.JSON(http.StatusForbidden, gin.H{"error": "moderator required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects callers without admin capability.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.MustGet("role").(model.RoleName)
		if !ok || !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
