package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochao170402/ecommerce-catalog/internal/service"
	"github.com/quochao170402/ecommerce-catalog/middleware"
)

type CategoryHandler struct {
	service *service.CategoriesService
}

func NewCategoryHandler(s *service.CategoriesService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func RegisterCategoryRoutes(rg *gin.RouterGroup, s *service.CategoriesService) {
	handler := NewCategoryHandler(s)

	rg.GET("", handler.GetAll)
	rg.POST("", handler.AddCategory)
	rg.DELETE("", handler.DeleteAllCategories)
	rg.GET("/:id", middleware.IntParamMiddleware("id"), handler.GetCategoryById)
	rg.PUT("/:id", middleware.IntParamMiddleware("id"), handler.UpdateCategory)
	rg.PATCH("/:id", middleware.IntParamMiddleware("id"), handler.PatchCategory)
	rg.DELETE("/:id", middleware.IntParamMiddleware("id"), handler.DeleteCategory)
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, total := h.service.FindAll(service.CategoryFilter{
		Size:   sizeQuery(c),
		Active: boolQuery(c, "active"),
	})

	c.JSON(http.StatusOK, ListResponse{
		Message: "Categories retrieved successfully",
		Data:    categories,
		Total:   total,
	})
}

func (h *CategoryHandler) GetCategoryById(c *gin.Context) {
	category, err := h.service.FindOne(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Category retrieved successfully",
		Data:    category,
	})
}

func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	category, err := h.service.Create(input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Message: "Category created successfully",
		Data:    category,
	})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	category, err := h.service.Update(c.GetInt("id"), input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Category updated successfully",
		Data:    category,
	})
}

func (h *CategoryHandler) PatchCategory(c *gin.Context) {
	var patch service.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		renderBadBody(c)
		return
	}

	category, err := h.service.PartialUpdate(c.GetInt("id"), patch)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Category updated successfully",
		Data:    category,
	})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	category, err := h.service.Delete(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Category deleted successfully",
		Data:    category,
	})
}

func (h *CategoryHandler) DeleteAllCategories(c *gin.Context) {
	count, err := h.service.DeleteAll()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "All categories deleted successfully",
		"deletedCount": count,
	})
}
