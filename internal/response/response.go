package response

import (
	"github.com/gin-gonic/gin"
)

// Error sends the flat {error} envelope used for every failure, with a
// non-2xx status. The underlying message is surfaced as-is.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// AbortError aborts the middleware chain and sends an error response.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
