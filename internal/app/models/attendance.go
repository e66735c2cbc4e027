package models

import "time"

// AttendanceStatus represents the status recorded for a student in a lesson.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// Attendance defines a single attendance fact based on the 'attendance' table.
// Rows are created only through the attendance recording flow, one batch per
// group per day; the status is set once at creation.
type Attendance struct {
	ID        int64            `json:"id" db:"id" example:"1"`
	TeacherID int64            `json:"teacher_id" db:"teacher_id" example:"1"`
	StudentID int64            `json:"student_id" db:"student_id" example:"3"`
	GroupID   int64            `json:"group_id" db:"group_id" example:"2"`
	SubjectID int64            `json:"subject_id" db:"subject_id" example:"1"`
	Date      time.Time        `json:"attendance_date" db:"attendance_date" example:"2024-03-01T00:00:00Z"`
	Status    AttendanceStatus `json:"status" db:"status" example:"present"`

	// Relations (populated when needed)
	Teacher *Teacher `json:"teacher,omitempty"`
	Student *Student `json:"student,omitempty"`
	Group   *Group   `json:"group,omitempty"`
	Subject *Subject `json:"subject,omitempty"`
}
