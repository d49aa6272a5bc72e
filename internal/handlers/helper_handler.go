package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive_backend/internal/middleware"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/services"
	"taskhive_backend/internal/services/dto"
)

type HelperHandler struct {
	*BaseHandler
	helperService *services.HelperService
}

func NewHelperHandler(base *BaseHandler, helperService *services.HelperService) *HelperHandler {
	return &HelperHandler{
		BaseHandler:   base,
		helperService: helperService,
	}
}

func (h *HelperHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/helpers")
	{
		public.POST("/register", h.Register)
		public.GET("", h.ListHelpers)
		public.GET("/:helperId", h.GetHelper)
	}

	me := r.Group("/helpers/me")
	me.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleHelper))
	{
		me.GET("", h.GetMe)
		me.PUT("", h.UpdateMe)
		me.DELETE("", h.DeleteMe)
	}
}

func (h *HelperHandler) Register(c *gin.Context) {
	var req dto.RegisterHelperRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	helper, err := h.helperService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, helper)
}

func (h *HelperHandler) ListHelpers(c *gin.Context) {
	helpers, err := h.helperService.ListHelpers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"helpers": helpers})
}

func (h *HelperHandler) GetHelper(c *gin.Context) {
	helper, err := h.helperService.GetHelper(c.Param("helperId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, helper)
}

func (h *HelperHandler) GetMe(c *gin.Context) {
	helperID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	helper, err := h.helperService.GetHelper(helperID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, helper)
}

func (h *HelperHandler) UpdateMe(c *gin.Context) {
	helperID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateHelperRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	helper, err := h.helperService.UpdateHelper(helperID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, helper)
}

func (h *HelperHandler) DeleteMe(c *gin.Context) {
	helperID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.helperService.DeleteAccount(helperID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
