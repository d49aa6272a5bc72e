package dto

import "time"

// ======================
// Request DTOs
// ======================

type RegisterHelperRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Username  string   `json:"username" validate:"required,min=3,max=40"`
	Password  string   `json:"password" validate:"required,min=8"`
	Skills    []string `json:"skills,omitempty" validate:"omitempty,max=30"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,geo_lat"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,geo_lng"`
}

type UpdateHelperRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Email        *string  `json:"email,omitempty" validate:"omitempty,email"`
	Username     *string  `json:"username,omitempty" validate:"omitempty,min=3,max=40"`
	Skills       []string `json:"skills,omitempty" validate:"omitempty,max=30"`
	Experience   *string  `json:"experience,omitempty" validate:"omitempty,max=2000"`
	Availability *bool    `json:"availability,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,geo_lat"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,geo_lng"`
}

// ======================
// Response DTOs
// ======================

type HelperResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	Skills           []string   `json:"skills"`
	Experience       string     `json:"experience"`
	Availability     bool       `json:"availability"`
	Location         *PointInfo `json:"location,omitempty"`
	TotalPeopleRated int        `json:"total_people_rated"`
	TotalRating      int        `json:"total_rating"`
	AppliedTasks     []string   `json:"applied_tasks"`
	AssignedTasks    []string   `json:"assigned_tasks"`
	CompletedTasks   []string   `json:"completed_tasks"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
}
