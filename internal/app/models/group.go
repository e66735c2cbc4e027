package models

// Group defines the group model based on the 'groups' table
type Group struct {
	ID         int64    `json:"id" db:"id" example:"1"`
	Name       string   `json:"group_name" db:"group_name" example:"Math-A1"`
	LessonTime string   `json:"lesson_time" db:"lesson_time" example:"15:00"`           // Daily lesson start time
	LessonDays []string `json:"lesson_days" db:"lesson_days" example:"monday,thursday"` // Weekdays the group meets
	SubjectID  *int64   `json:"group_subject_id,omitempty" db:"group_subject_id"`       // Assigned subject (nullable)

	// Relations (populated when needed)
	Subject  *Subject   `json:"group_subject,omitempty"`
	Teachers []*Teacher `json:"group_teachers,omitempty"`
	Students []*Student `json:"group_students,omitempty"`
}
