package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emmanu-hec2a/formManagement/pkg/response"
)

// BodyLimit caps the request body size. Memo content is the largest field the
// forms carry, so 1MB leaves plenty of headroom.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 41300, "request body too large")
				return
			}
		}
	}
}
