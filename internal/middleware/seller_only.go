// seller_only.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SellerOnly gates the dashboard routes to seller accounts.
func SellerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != "seller" {
			c.JSON(http.StatusForbidden, gin.H{"error": "seller account required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
