// simple structured request logging

package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request.
// Good enough for local dev; the audit trail of actual dashboard actions
// lives in redislog.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep it: handlers may rewrite the URL
		c.Next()
		log.Printf("%s %s %d %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start))
	}
}
