package middleware

import (
	"net/http"

	"cybertask-app/cybertask/services"
	"cybertask-app/cybertask/utils/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller from the session cookie or a Bearer
// header. A missing or invalid session is a normal outcome: the request is
// rejected with 401, nothing is logged as an error.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		// Store user info in the context for later use
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)

		c.Next()
	}
}
