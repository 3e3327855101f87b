package middleware

import (
	"net/http"
	"strings"

	"blogicum-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	viewerIDKey       = "viewerID"
	viewerUsernameKey = "viewerUsername"
)

// RequireAuth guards mutation endpoints. Anonymous or invalid-token
// requests are sent to the external login flow rather than answered with
// a bare 401.
func RequireAuth(manager *jwt.Manager, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, manager)
		if !ok {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}

		viewerID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}

		c.Set(viewerIDKey, viewerID)
		c.Set(viewerUsernameKey, claims.Username)
		c.Next()
	}
}

// OptionalAuth populates the viewer identity when a valid token is
// present and lets anonymous requests through untouched. Listing and
// detail pages use it.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, manager); ok {
			if viewerID, err := uuid.Parse(claims.UserID); err == nil {
				c.Set(viewerIDKey, viewerID)
				c.Set(viewerUsernameKey, claims.Username)
			}
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, manager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := manager.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// ViewerID returns the authenticated viewer's id, if any.
func ViewerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(viewerIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// ViewerUsername returns the authenticated viewer's username, if any.
func ViewerUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get(viewerUsernameKey)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
