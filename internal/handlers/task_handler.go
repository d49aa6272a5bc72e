package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive_backend/internal/middleware"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/services"
	"taskhive_backend/internal/services/dto"
)

type TaskHandler struct {
	*BaseHandler
	taskService *services.TaskService
}

func NewTaskHandler(base *BaseHandler, taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		BaseHandler: base,
		taskService: taskService,
	}
}

func (h *TaskHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/tasks")
	{
		public.GET("", h.ListTasks)
		public.GET("/:taskId", h.GetTask)
	}

	r.GET("/categories", h.ListCategories)

	// Task ownership operations, users only.
	owner := r.Group("/tasks")
	owner.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleUser))
	{
		owner.POST("", h.CreateTask)
		owner.PUT("/:taskId", h.UpdateTask)
		owner.DELETE("/:taskId", h.DeleteTask)
		owner.POST("/:taskId/assign", h.AssignHelper)
		owner.POST("/:taskId/complete", h.CompleteTask)
	}

	// Application operations, helpers only.
	applicant := r.Group("/tasks")
	applicant.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleHelper))
	{
		applicant.POST("/:taskId/apply", h.ApplyForTask)
		applicant.DELETE("/:taskId/apply", h.CancelApplication)
	}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.ListTasksQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	tasks, err := h.taskService.ListTasks(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) ListCategories(c *gin.Context) {
	categories, err := h.taskService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(ownerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(ownerID, c.Param("taskId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(ownerID, c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func (h *TaskHandler) AssignHelper(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AssignHelperRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.taskService.AssignHelper(ownerID, c.Param("taskId"), req.HelperID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Helper assigned"})
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.CompleteTask(ownerID, c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task completed"})
}

func (h *TaskHandler) ApplyForTask(c *gin.Context) {
	helperID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.ApplyForTask(helperID, c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application submitted"})
}

func (h *TaskHandler) CancelApplication(c *gin.Context) {
	helperID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.CancelApplication(helperID, c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application cancelled"})
}
