package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/constants"
	apierrors "github.com/yukikurage/campus-wellness-api/internal/errors"
	"github.com/yukikurage/campus-wellness-api/internal/session"
)

// RequireAuth checks if the user is authenticated via session. Anonymous
// requests are sent back to the login screen.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := session.Username(c)
		if !ok {
			apierrors.UnauthorizedWithRedirect(c, "", constants.AuthLoginPath)
			c.Abort()
			return
		}

		// Store username in context for easy access in handlers
		c.Set(constants.ContextKeyUsername, username)
		c.Next()
	}
}

// GetUsername retrieves the current username from context
func GetUsername(c *gin.Context) (string, bool) {
	username := c.GetString(constants.ContextKeyUsername)
	if username == "" {
		return "", false
	}
	return username, true
}
