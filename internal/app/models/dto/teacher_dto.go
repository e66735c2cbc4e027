package dto

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	FirstName   string  `json:"teacher_firstname" binding:"required"`
	LastName    string  `json:"teacher_lastname" binding:"required"`
	PhoneNumber string  `json:"teacher_phone_number" binding:"required"`
	SubjectID   *int64  `json:"teacher_subject_id" binding:"omitempty,min=1"`
	GroupIDs    []int64 `json:"teacher_groups" binding:"omitempty,dive,min=1"`
	StudentIDs  []int64 `json:"teacher_students" binding:"omitempty,dive,min=1"`
}

// UpdateTeacherRequest represents teacher update data; nil fields are kept
type UpdateTeacherRequest struct {
	FirstName   *string  `json:"teacher_firstname,omitempty"`
	LastName    *string  `json:"teacher_lastname,omitempty"`
	PhoneNumber *string  `json:"teacher_phone_number,omitempty"`
	SubjectID   *int64   `json:"teacher_subject_id,omitempty" binding:"omitempty,min=1"`
	GroupIDs    *[]int64 `json:"teacher_groups,omitempty" binding:"omitempty,dive,min=1"`
	StudentIDs  *[]int64 `json:"teacher_students,omitempty" binding:"omitempty,dive,min=1"`
}
