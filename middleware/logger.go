package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

// RequestLogger logs one line per request with latency and the client
// device parsed from the User-Agent header.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ua := useragent.Parse(c.Request.UserAgent())
		client := ua.Name
		if ua.OS != "" {
			client += "/" + ua.OS
		}
		if client == "" {
			client = "unknown"
		}

		log.Printf("%s %s %d %s client=%s request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			client,
			c.GetString("request_id"),
		)
	}
}
