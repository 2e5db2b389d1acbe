// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/vidheexx/Nutrimate/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the only gate between an unauthenticated request and
// account or meal mutation. It validates the bearer token and stashes the
// claim email in the context as the acting identity.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
