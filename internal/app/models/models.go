package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleTeacher RoleType = "teacher"
)

// Valid returns true when the role is a supported value.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher:
		return true
	default:
		return false
	}
}
