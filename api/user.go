package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochao170402/ecommerce-catalog/internal/service"
	"github.com/quochao170402/ecommerce-catalog/middleware"
)

type UserHandler struct {
	service *service.UsersService
}

func NewUserHandler(s *service.UsersService) *UserHandler {
	return &UserHandler{service: s}
}

func RegisterUserRoutes(rg *gin.RouterGroup, s *service.UsersService) {
	handler := NewUserHandler(s)

	rg.GET("", handler.GetAll)
	rg.POST("", handler.AddUser)
	rg.GET("/:id", middleware.IntParamMiddleware("id"), handler.GetUserById)
	rg.PUT("/:id", middleware.IntParamMiddleware("id"), handler.UpdateUser)
	rg.PATCH("/:id", middleware.IntParamMiddleware("id"), handler.PatchUser)
	rg.DELETE("/:id", middleware.IntParamMiddleware("id"), handler.DeleteUser)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, total := h.service.FindAll(service.UserFilter{Size: sizeQuery(c)})

	c.JSON(http.StatusOK, ListResponse{
		Message: "Users retrieved successfully",
		Data:    users,
		Total:   total,
	})
}

func (h *UserHandler) GetUserById(c *gin.Context) {
	user, err := h.service.FindOne(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "User retrieved successfully",
		Data:    user,
	})
}

func (h *UserHandler) AddUser(c *gin.Context) {
	var input service.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	user, err := h.service.Create(input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Message: "User created successfully",
		Data:    user,
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var input service.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		renderBadBody(c)
		return
	}

	user, err := h.service.Update(c.GetInt("id"), input)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "User updated successfully",
		Data:    user,
	})
}

func (h *UserHandler) PatchUser(c *gin.Context) {
	var patch service.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		renderBadBody(c)
		return
	}

	user, err := h.service.PartialUpdate(c.GetInt("id"), patch)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "User updated successfully",
		Data:    user,
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.service.Delete(c.GetInt("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "User deleted successfully",
		Data:    user,
	})
}
