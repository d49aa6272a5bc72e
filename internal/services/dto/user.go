package dto

import "time"

// ======================
// Request DTOs
// ======================

type RegisterUserRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Username  string   `json:"username" validate:"required,min=3,max=40"`
	Password  string   `json:"password" validate:"required,min=8"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,geo_lat"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,geo_lng"`
}

type UpdateUserRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Email     *string  `json:"email,omitempty" validate:"omitempty,email"`
	Username  *string  `json:"username,omitempty" validate:"omitempty,min=3,max=40"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,geo_lat"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,geo_lng"`
}

// ======================
// Response DTOs
// ======================

type UserResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	Location         *PointInfo `json:"location,omitempty"`
	IsActive         bool       `json:"is_active"`
	TotalHelperRated int        `json:"total_helper_rated"`
	TotalRating      int        `json:"total_rating"`
	CreatedAt        time.Time  `json:"created_at"`
}

type PointInfo struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}
