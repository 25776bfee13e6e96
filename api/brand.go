package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochao170402/ecommerce-catalog/internal/service"
	"github.com/quochao170402/ecommerce-catalog/middleware"
)

type BrandHandler struct {
	service *service.BrandsService
}

func NewBrandHandler(s *service.BrandsService) *BrandHandler {
	return &BrandHandler{service: s}
}

func RegisterBrandRoutes(rg *gin.RouterGroup, s *service.BrandsService) {
	handler := NewBrandHandler(s)

	rg.GET("", handler.GetAll)
	rg.POST("", handler.AddBrand)
	rg.GET("/:id", middleware.IntParamMiddleware("id"), handler.GetBrandById)
	rg.PUT("/:id", middleware.IntParamMiddleware("id"), handler.UpdateBrand)
	rg.PATCH("/:id", middleware.IntParamMiddleware("id"), handler.PatchBrand)
	rg.DELETE("/:id", middleware.IntParamMiddleware("id"), handler.DeleteBrand)
}

func (h *BrandHandler) GetAll(c *gin.Context) {
	brands, total := h.service.FindAll(service.BrandFilter{
		Size:   sizeQuery(c),
		Active: boolQuery(c, "active"),
	})

	c.JSON(http.StatusOK, ListResponse{
		Message: "Brands retrieved successfully",
		Data:    brands,
		Total:   total,
	})
}

func (h *BrandHandler) GetBrandById(c *gin.Context) {
	brand, err := h.service.FindOne(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Brand retrieved successfully",
		Data:    brand,
	})
}

func (h *BrandHandler) AddBrand(c *gin.Context) {
	var input service.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	brand, err := h.service.Create(input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Message: "Brand created successfully",
		Data:    brand,
	})
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	var input service.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	brand, err := h.service.Update(c.GetInt("id"), input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Brand updated successfully",
		Data:    brand,
	})
}

func (h *BrandHandler) PatchBrand(c *gin.Context) {
	var patch service.BrandPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		renderBadBody(c)
		return
	}

	brand, err := h.service.PartialUpdate(c.GetInt("id"), patch)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Brand updated successfully",
		Data:    brand,
	})
}

func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	brand, err := h.service.Delete(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Brand deleted successfully",
		Data:    brand,
	})
}
