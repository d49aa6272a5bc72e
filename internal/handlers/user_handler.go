package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive_backend/internal/middleware"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/services"
	"taskhive_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/users")
	{
		public.POST("/register", h.Register)
		public.GET("", h.ListUsers)
		public.GET("/:userId", h.GetUser)
	}

	me := r.Group("/users/me")
	me.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleUser))
	{
		me.GET("", h.GetMe)
		me.PUT("", h.UpdateMe)
		me.DELETE("", h.DeleteMe)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
