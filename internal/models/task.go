package models

import "gorm.io/datatypes"

// Task is the central aggregate. Status is IN_PROGRESS iff an assigned
// helper is set and the task is not completed; a task with an assigned
// helper can never be deleted.
type Task struct {
	BaseModel
	Title               string                      `gorm:"not null" json:"title"`
	Description         string                      `gorm:"not null" json:"description"`
	CategoryID          string                      `gorm:"not null;index" json:"category_id"`
	Location            Point                       `gorm:"type:jsonb;not null" json:"location"`
	Status              TaskStatus                  `gorm:"type:varchar(20);default:'NEW'" json:"status"`
	SpecialInstructions datatypes.JSONSlice[string] `json:"special_instructions"`
	OwnerID             string                      `gorm:"not null;index" json:"owner_id"`
	Budget              float64                     `gorm:"default:0" json:"budget"`
	AppliedHelpers      datatypes.JSONSlice[string] `json:"applied_helpers"`
	AssignedHelper      *string                     `gorm:"index" json:"assigned_helper"`
}

// HasApplicant reports whether helperID is in the applied set.
func (t *Task) HasApplicant(helperID string) bool {
	return containsID(t.AppliedHelpers, helperID)
}

// Category is seed/admin lookup data referenced by tasks.
type Category struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
