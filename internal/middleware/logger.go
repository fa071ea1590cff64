package middleware

import (
	"time" // Request latency measurement

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger logs one structured line per handled request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()          // Mark the request start
		path := c.Request.URL.Path   // Path before handlers can rewrite it
		c.Next()                     // Run the matched handlers
		latency := time.Since(start) // Total handling time
		// Emit the request line with its outcome
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,   // HTTP method
			"path":    path,               // Request path
			"status":  c.Writer.Status(),  // Response status code
			"latency": latency.String(),   // Handling duration
			"client":  c.ClientIP(),       // Caller address
		}).Info("Request handled")
	}
}
