package models

// Review records a rating event between a user and a helper for one task.
// Creation, update and deletion keep the reviewee's aggregate counters in
// step through atomic increments.
type Review struct {
	BaseModel
	UserID       string `gorm:"not null;index" json:"user_id"`
	TaskID       string `gorm:"not null;index" json:"task_id"`
	HelperID     string `gorm:"not null;index" json:"helper_id"`
	Rating       int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText   string `json:"review_text"`
	ReviewerRole Role   `gorm:"type:varchar(10);not null" json:"reviewer_role"`
	RevieweeRole Role   `gorm:"type:varchar(10);not null" json:"reviewee_role"`
}
