package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSubscriber authorizes routes under /subscribers/:id. The upstream
// edge authenticates the caller and forwards their identity in X-User-ID; a
// caller may only act on their own subscriber resource.
func RequireSubscriber() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
			return
		}
		if userID != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "cannot act on another subscriber"})
			return
		}

		c.Next()
	}
}
