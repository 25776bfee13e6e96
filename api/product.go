package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochao170402/ecommerce-catalog/internal/service"
	"github.com/quochao170402/ecommerce-catalog/middleware"
)

type ProductHandler struct {
	service *service.ProductsService
}

func NewProductHandler(s *service.ProductsService) *ProductHandler {
	return &ProductHandler{service: s}
}

// RegisterProductRoutes wires the product endpoints. The category/brand
// scoped listings must be registered before the generic /:id route.
func RegisterProductRoutes(rg *gin.RouterGroup, s *service.ProductsService) {
	handler := NewProductHandler(s)

	rg.GET("", handler.GetAll)
	rg.POST("", handler.AddProduct)
	rg.GET("/category/:categoryId", middleware.IntParamMiddleware("categoryId"), handler.GetProductsByCategory)
	rg.GET("/brand/:brandId", middleware.IntParamMiddleware("brandId"), handler.GetProductsByBrand)
	rg.GET("/:id", middleware.IntParamMiddleware("id"), handler.GetProductById)
	rg.PUT("/:id", middleware.IntParamMiddleware("id"), handler.UpdateProduct)
	rg.PATCH("/:id", middleware.IntParamMiddleware("id"), handler.PatchProduct)
	rg.DELETE("/:id", middleware.IntParamMiddleware("id"), handler.DeleteProduct)
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	products, total := h.service.FindAll(service.ProductFilter{
		Size:     sizeQuery(c),
		MinPrice: floatQuery(c, "minPrice"),
		MaxPrice: floatQuery(c, "maxPrice"),
		MinStock: intQuery(c, "minStock"),
	})

	c.JSON(http.StatusOK, ListResponse{
		Message: "Products retrieved successfully",
		Data:    products,
		Total:   total,
	})
}

func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	categoryID := c.GetInt("categoryId")
	products, total, err := h.service.FindByCategory(categoryID, sizeQuery(c))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Products by category retrieved successfully",
		"categoryId": categoryID,
		"products":   products,
		"total":      total,
	})
}

func (h *ProductHandler) GetProductsByBrand(c *gin.Context) {
	brandID := c.GetInt("brandId")
	products, total, err := h.service.FindByBrand(brandID, sizeQuery(c))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Products by brand retrieved successfully",
		"brandId":  brandID,
		"products": products,
		"total":    total,
	})
}

func (h *ProductHandler) GetProductById(c *gin.Context) {
	product, err := h.service.FindOne(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	product, err := h.service.Create(input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Message: "Product created successfully",
		Data:    product,
	})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	product, err := h.service.Update(c.GetInt("id"), input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Product updated successfully",
		Data:    product,
	})
}

func (h *ProductHandler) PatchProduct(c *gin.Context) {
	var patch service.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		renderBadBody(c)
		return
	}

	product, err := h.service.PartialUpdate(c.GetInt("id"), patch)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Product updated successfully",
		Data:    product,
	})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	product, err := h.service.Delete(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Product deleted successfully",
		Data:    product,
	})
}
