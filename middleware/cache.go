package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks a response as cacheable for the given
// number of seconds. Used on the global category listing.
func CacheControlMiddleware(duration string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+duration)
		c.Next()
	}
}
