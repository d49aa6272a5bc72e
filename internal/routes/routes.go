package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive_backend/internal/handlers"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		h.AuthHandler.RegisterRoutes(api)
		h.UserHandler.RegisterRoutes(api)
		h.HelperHandler.RegisterRoutes(api)
		h.TaskHandler.RegisterRoutes(api)
		h.ReviewHandler.RegisterRoutes(api)
	}
}
