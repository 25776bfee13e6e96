package api

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
)

// Response is the envelope for single-record results.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ListResponse additionally reports the total count: the store size before
// any filtering, not the length of data.
type ListResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Total   int    `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func renderError(c *gin.Context, err error) {
	c.JSON(domain.StatusCode(err), ErrorResponse{
		Error:   string(domain.KindOf(err)),
		Message: err.Error(),
	})
}

func renderBadBody(c *gin.Context) {
	renderError(c, domain.Validationf("Invalid request body"))
}

// sizeQuery reads the size parameter. Absent or invalid values mean no
// truncation.
func sizeQuery(c *gin.Context) int {
	raw := c.Query("size")
	if raw == "" {
		return 0
	}
	size, err := cast.ToIntE(raw)
	if err != nil || size < 0 {
		return 0
	}
	return size
}

func boolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v := cast.ToBool(raw)
	return &v
}

func floatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil
	}
	return &v
}

func intQuery(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return nil
	}
	return &v
}
