// catches panics and returns 500 without crashing the server.

package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery converts a panic during request handling into a 500 response.
// Nothing in the dashboard should be fatal to the process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
