package models

// Admin defines the admin model based on the 'admins' table
type Admin struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	FirstName   string `json:"admin_firstname" db:"admin_firstname" example:"Dilshod"`
	LastName    string `json:"admin_lastname" db:"admin_lastname" example:"Rahimov"`
	PhoneNumber string `json:"admin_phone_number" db:"admin_phone_number"`
}
