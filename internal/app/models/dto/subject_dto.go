package dto

// CreateSubjectRequest represents subject creation data
type CreateSubjectRequest struct {
	Name string `json:"subject_name" binding:"required"`
}

// UpdateSubjectRequest represents subject update data
type UpdateSubjectRequest struct {
	Name string `json:"subject_name" binding:"required"`
}
