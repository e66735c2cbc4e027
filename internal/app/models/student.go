package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID                 int64  `json:"id" db:"id" example:"1"`
	FirstName          string `json:"student_firstname" db:"student_firstname" example:"Laylo"`
	LastName           string `json:"student_lastname" db:"student_lastname" example:"Tosheva"`
	PhoneNumber        string `json:"student_phone_number" db:"student_phone_number"`
	ParentsFullName    string `json:"student_parents_fullname" db:"student_parents_fullname"`
	ParentsPhoneNumber string `json:"student_parents_phone_number" db:"student_parents_phone_number"`
	AdditionalInfo     string `json:"student_additional_info" db:"student_additional_info"`

	// Relations (populated when needed)
	Groups   []*Group   `json:"student_groups,omitempty"`   // Groups the student belongs to
	Teachers []*Teacher `json:"student_teachers,omitempty"` // Teachers assigned to the student
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
