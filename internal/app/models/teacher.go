package models

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID          int64  `json:"id" db:"id" example:"1"`                                       // Unique identifier for the teacher
	FirstName   string `json:"teacher_firstname" db:"teacher_firstname" example:"Aziz"`      // Teacher's first name
	LastName    string `json:"teacher_lastname" db:"teacher_lastname" example:"Karimov"`     // Teacher's last name
	PhoneNumber string `json:"teacher_phone_number" db:"teacher_phone_number"`               // Teacher's phone number
	SubjectID   *int64 `json:"teacher_subject_id,omitempty" db:"teacher_subject_id"`         // Assigned subject (nullable)

	// Relations (populated when needed)
	Subject  *Subject   `json:"teacher_subject,omitempty"`  // Assigned subject
	Groups   []*Group   `json:"teacher_groups,omitempty"`   // Groups the teacher is assigned to
	Students []*Student `json:"teacher_students,omitempty"` // Students assigned to the teacher
}

// FullName returns the teacher's display name.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
