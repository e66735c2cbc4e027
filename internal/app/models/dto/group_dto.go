package dto

// CreateGroupRequest represents group creation data
type CreateGroupRequest struct {
	Name       string   `json:"group_name" binding:"required"`
	LessonTime string   `json:"lesson_time" binding:"required"`
	LessonDays []string `json:"lesson_days" binding:"required,min=1"`
	SubjectID  *int64   `json:"group_subject_id" binding:"omitempty,min=1"`
	TeacherIDs []int64  `json:"group_teachers" binding:"omitempty,dive,min=1"`
	StudentIDs []int64  `json:"group_students" binding:"omitempty,dive,min=1"`
}

// UpdateGroupRequest represents group update data; nil fields are kept
type UpdateGroupRequest struct {
	Name       *string   `json:"group_name,omitempty"`
	LessonTime *string   `json:"lesson_time,omitempty"`
	LessonDays *[]string `json:"lesson_days,omitempty" binding:"omitempty,min=1"`
	SubjectID  *int64    `json:"group_subject_id,omitempty" binding:"omitempty,min=1"`
	TeacherIDs *[]int64  `json:"group_teachers,omitempty" binding:"omitempty,dive,min=1"`
	StudentIDs *[]int64  `json:"group_students,omitempty" binding:"omitempty,dive,min=1"`
}
