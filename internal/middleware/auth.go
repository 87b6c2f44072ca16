package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/pkg/utils"
)

// sessionToken extracts the signed session token from the request: the
// session cookie first, then an Authorization bearer header for API clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// ResolveSession validates the session if present without aborting.
// It sets "userId", "userRole" and "claims" in the context on success.
// Page routes use this to decide between dashboard and landing page.
func ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil || database.IsSessionRevoked(claims.ID) {
			c.Next()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthRequired rejects requests without a valid, unrevoked session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		if database.IsSessionRevoked(claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has been revoked"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// AdminRequired enforces the admin gate. It runs after AuthRequired and
// re-checks the role against the database, so a stale session token cannot
// outlive a demotion.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SessionUserID returns the authenticated user id set by AuthRequired.
func SessionUserID(c *gin.Context) uint {
	val, exists := c.Get("userId")
	if !exists {
		return 0
	}
	id, _ := val.(uint)
	return id
}
