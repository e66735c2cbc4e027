package models

import "time"

// User defines the user model based on the 'users' table. A user account is
// linked either to an admin or to a teacher, depending on its role.
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Username     string    `json:"username" db:"username" example:"dilshod"`
	Password     string    `json:"-" db:"password"` // Hashed password (excluded from JSON)
	Role         RoleType  `json:"role" db:"role" example:"admin"`
	AdminID      *int64    `json:"admin_id,omitempty" db:"admin_id"`
	TeacherID    *int64    `json:"teacher_id,omitempty" db:"teacher_id"`
	RefreshToken *string   `json:"-" db:"refresh_token"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Relations (populated when needed)
	Admin   *Admin   `json:"admin,omitempty"`
	Teacher *Teacher `json:"teacher,omitempty"`
}
