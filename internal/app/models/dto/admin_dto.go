package dto

// CreateAdminRequest represents admin creation data
type CreateAdminRequest struct {
	FirstName   string `json:"admin_firstname" binding:"required"`
	LastName    string `json:"admin_lastname" binding:"required"`
	PhoneNumber string `json:"admin_phone_number" binding:"required"`
}

// UpdateAdminRequest represents admin update data; nil fields are kept
type UpdateAdminRequest struct {
	FirstName   *string `json:"admin_firstname,omitempty"`
	LastName    *string `json:"admin_lastname,omitempty"`
	PhoneNumber *string `json:"admin_phone_number,omitempty"`
}
