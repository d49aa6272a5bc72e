package models

import "gorm.io/datatypes"

// Helper is a task-performing actor. The three task-reference sets are
// disjoint: a task id lives in at most one of applied, assigned, completed.
type Helper struct {
	BaseModel
	Name             string                      `gorm:"not null" json:"name"`
	Email            string                      `gorm:"uniqueIndex;not null" json:"email"`
	Username         string                      `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash     string                      `gorm:"not null" json:"-"`
	Skills           datatypes.JSONSlice[string] `json:"skills"`
	Experience       string                      `gorm:"default:''" json:"experience"`
	Availability     bool                        `gorm:"default:true" json:"availability"`
	Location         *Point                      `gorm:"type:jsonb" json:"location,omitempty"`
	TotalPeopleRated int                         `gorm:"default:0" json:"total_people_rated"`
	TotalRating      int                         `gorm:"default:0" json:"total_rating"`
	AppliedTasks     datatypes.JSONSlice[string] `json:"applied_tasks"`
	AssignedTasks    datatypes.JSONSlice[string] `json:"assigned_tasks"`
	CompletedTasks   datatypes.JSONSlice[string] `json:"completed_tasks"`
	IsVerified       bool                        `gorm:"default:false" json:"is_verified"`
	IsActive         bool                        `gorm:"default:true" json:"is_active"`
	ProfileComplete  bool                        `gorm:"default:false" json:"profile_complete"`
}

// HasApplied reports whether taskID is in the applied set.
func (h *Helper) HasApplied(taskID string) bool {
	return containsID(h.AppliedTasks, taskID)
}

// HasAssigned reports whether taskID is in the assigned set.
func (h *Helper) HasAssigned(taskID string) bool {
	return containsID(h.AssignedTasks, taskID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
