package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	FirstName          string  `json:"student_firstname" binding:"required"`
	LastName           string  `json:"student_lastname" binding:"required"`
	PhoneNumber        string  `json:"student_phone_number" binding:"required"`
	ParentsFullName    string  `json:"student_parents_fullname"`
	ParentsPhoneNumber string  `json:"student_parents_phone_number"`
	AdditionalInfo     string  `json:"student_additional_info"`
	GroupIDs           []int64 `json:"student_groups" binding:"omitempty,dive,min=1"`
	TeacherIDs         []int64 `json:"student_teachers" binding:"omitempty,dive,min=1"`
}

// UpdateStudentRequest represents student update data; nil fields are kept
type UpdateStudentRequest struct {
	FirstName          *string  `json:"student_firstname,omitempty"`
	LastName           *string  `json:"student_lastname,omitempty"`
	PhoneNumber        *string  `json:"student_phone_number,omitempty"`
	ParentsFullName    *string  `json:"student_parents_fullname,omitempty"`
	ParentsPhoneNumber *string  `json:"student_parents_phone_number,omitempty"`
	AdditionalInfo     *string  `json:"student_additional_info,omitempty"`
	GroupIDs           *[]int64 `json:"student_groups,omitempty" binding:"omitempty,dive,min=1"`
	TeacherIDs         *[]int64 `json:"student_teachers,omitempty" binding:"omitempty,dive,min=1"`
}
