package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateReviewRequest struct {
	// RevieweeID is the party being rated: a helper id when the caller is a
	// user, a user id when the caller is a helper.
	RevieweeID string `json:"reviewee_id" validate:"required"`
	TaskID     string `json:"task_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=2000"`
}

// ======================
// Response DTOs
// ======================

type ReviewResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TaskID       string    `json:"task_id"`
	HelperID     string    `json:"helper_id"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text"`
	ReviewerRole string    `json:"reviewer_role"`
	RevieweeRole string    `json:"reviewee_role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews []*ReviewResponse `json:"reviews"`
	Total   int64             `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}
