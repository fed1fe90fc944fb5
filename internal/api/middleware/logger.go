package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one access-log line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		log.Printf("[API] %s %s %d %v (%s)", c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
