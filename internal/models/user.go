package models

import "time"

// User is a task-posting actor. Deletion is a soft transition: is_active is
// cleared after every unassigned owned task has been removed.
type User struct {
	BaseModel
	Name             string `gorm:"not null" json:"name"`
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	Username         string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash     string `gorm:"not null" json:"-"`
	Location         *Point `gorm:"type:jsonb" json:"location,omitempty"`
	IsActive         bool   `gorm:"default:true" json:"is_active"`
	TotalHelperRated int    `gorm:"default:0" json:"total_helper_rated"`
	TotalRating      int    `gorm:"default:0" json:"total_rating"`
}

// RefreshToken persists one refresh token for either actor type.
type RefreshToken struct {
	BaseModel
	ActorID   string    `gorm:"not null;index" json:"actor_id"`
	Role      Role      `gorm:"type:varchar(10);not null" json:"role"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
