package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vimco/vimco-api/internal/modules/serializer"
)

// BodyLimit caps request bodies at maxBytes. Oversized bodies declared through
// Content-Length are refused up front; others fail when the handler reads past the cap.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, serializer.Fail("request entity too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
