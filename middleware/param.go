package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// IntParamMiddleware validates that the named path parameter is a positive
// integer and stores the parsed value in the context.
func IntParamMiddleware(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := cast.ToIntE(c.Param(param))
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "ValidationError",
				"message": "Invalid id",
			})
			c.Abort()
			return
		}
		c.Set(param, id)
		c.Next()
	}
}
