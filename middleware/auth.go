package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"internhub/services"
	"internhub/utils"
)

// UserIDKey is the context key the auth middleware stores the
// authenticated user's ID under.
const UserIDKey = "user_id"

// RequireAuth validates the bearer token and stores the caller's
// identity on the request context.
func RequireAuth(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.UnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			utils.UnauthorizedError(c, "Authorization header must be a bearer token")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.UnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID reads the authenticated user ID set by RequireAuth
func CurrentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int)
	return id, ok
}
