package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateTaskRequest struct {
	Title               string   `json:"title" validate:"required,max=200"`
	Description         string   `json:"description" validate:"required,max=5000"`
	CategoryID          string   `json:"category_id" validate:"required"`
	Latitude            float64  `json:"latitude" validate:"geo_lat"`
	Longitude           float64  `json:"longitude" validate:"geo_lng"`
	SpecialInstructions []string `json:"special_instructions,omitempty"`
	Budget              float64  `json:"budget" validate:"omitempty,min=0"`
}

type UpdateTaskRequest struct {
	Title               *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description         *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	CategoryID          *string  `json:"category_id,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty" validate:"omitempty,geo_lat"`
	Longitude           *float64 `json:"longitude,omitempty" validate:"omitempty,geo_lng"`
	SpecialInstructions []string `json:"special_instructions,omitempty"`
	Budget              *float64 `json:"budget,omitempty" validate:"omitempty,min=0"`
}

type ApplyTaskRequest struct {
	TaskID string `json:"task_id" validate:"required"`
}

type AssignHelperRequest struct {
	HelperID string `json:"helper_id" validate:"required"`
}

type ListTasksQuery struct {
	CategoryID string `form:"category_id"`
	Status     string `form:"status" validate:"omitempty,is-task-status"`
	OwnerID    string `form:"owner_id"`
}

// ======================
// Response DTOs
// ======================

type TaskResponse struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	CategoryID          string     `json:"category_id"`
	Location            PointInfo  `json:"location"`
	Status              string     `json:"status"`
	SpecialInstructions []string   `json:"special_instructions"`
	OwnerID             string     `json:"owner_id"`
	Budget              float64    `json:"budget"`
	AppliedHelpers      []string   `json:"applied_helpers"`
	AssignedHelper      *string    `json:"assigned_helper"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
