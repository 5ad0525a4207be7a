package middleware

import (
	"net/http"
	"strings"

	"skyline/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards endpoints that require a logged-in customer. On
// success the customer id lands in the context under "customerID".
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		customerID, err := utils.ExtractCustomerIDFromToken(tokenString)
		if err != nil || customerID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("customerID", customerID)
		c.Next()
	}
}
