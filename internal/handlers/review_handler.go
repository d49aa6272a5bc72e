package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive_backend/internal/middleware"
	"taskhive_backend/internal/models"
	"taskhive_backend/internal/services"
	"taskhive_backend/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService *services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/reviews")
	{
		public.GET("", h.ListReviews)
		public.GET("/:reviewId", h.GetReview)
		public.GET("/helpers/:helperId", h.GetHelperReviews)
		public.GET("/users/:userId", h.GetUserReviews)
		public.GET("/tasks/:taskId", h.GetTaskReviews)
	}

	protected := r.Group("/reviews")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateReview)
		protected.PUT("/:reviewId", h.UpdateReview)
		protected.DELETE("/:reviewId", h.DeleteReview)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	limit, offset := ParsePagination(c)

	resp, err := h.reviewService.ListReviews(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewService.GetReview(c.Param("reviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) GetHelperReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListHelperReviews(c.Param("helperId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListUserReviews(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) GetTaskReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListTaskReviews(c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	actorRole := models.Role(h.GetActorRole(c))

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(actorID, actorRole, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.UpdateReview(actorID, c.Param("reviewId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(actorID, c.Param("reviewId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
