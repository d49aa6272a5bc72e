package models

type TaskStatus string
type Role string

const (
	TaskStatusNew        TaskStatus = "NEW"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"

	RoleUser   Role = "USER"
	RoleHelper Role = "HELPER"
)

// ValidTaskStatus reports whether s is one of the three task states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Complement returns the opposite actor role.
func (r Role) Complement() Role {
	if r == RoleUser {
		return RoleHelper
	}
	return RoleUser
}
