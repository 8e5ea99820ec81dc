package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"internhub/utils"
)

// MaxRequestSize limits the request body size. Used on the resume
// upload route to bound PDF sizes.
func MaxRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// ValidateContentType ensures the request has one of the expected
// content types. GET and DELETE requests are not validated.
func ValidateContentType(expectedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		for _, expected := range expectedTypes {
			if strings.Contains(contentType, expected) {
				c.Next()
				return
			}
		}

		utils.BadRequestError(c, "Invalid content type", nil)
		c.Abort()
	}
}
