package dto

import "github.com/Javohir0411/global-school/internal/app/models"

// AttendanceMark is one student+status pair inside a batch submission
type AttendanceMark struct {
	StudentID int64                   `json:"student_id" binding:"required,min=1"`
	Status    models.AttendanceStatus `json:"status" binding:"required,oneof=present absent late"`
}

// RecordAttendanceRequest represents one attendance batch: one teacher, one
// group and the marks for the group's students, recorded for the current day
type RecordAttendanceRequest struct {
	TeacherID  int64            `json:"teacher_id" binding:"required,min=1"`
	GroupID    int64            `json:"group_id" binding:"required,min=1"`
	Attendance []AttendanceMark `json:"attendance" binding:"required,min=1,dive"`
}

// RecordedStudent is one line of the batch summary
type RecordedStudent struct {
	StudentName string                  `json:"student_name" example:"Laylo Tosheva"`
	Status      models.AttendanceStatus `json:"status" example:"present"`
}

// AttendanceSummaryResponse describes what was recorded for a batch
type AttendanceSummaryResponse struct {
	TeacherName string            `json:"teacher_name" example:"Aziz Karimov"`
	GroupName   string            `json:"group_name" example:"Math-A1"`
	SubjectName string            `json:"subject_name" example:"Math"`
	Date        string            `json:"attendance_date" example:"2024-03-01"`
	LessonDays  []string          `json:"lesson_days" example:"monday,thursday"`
	LessonTime  string            `json:"lesson_time" example:"15:00"`
	Students    []RecordedStudent `json:"students"`
}

// UpdateAttendanceRequest replaces individual fields of an attendance row
type UpdateAttendanceRequest struct {
	Status *models.AttendanceStatus `json:"status,omitempty" binding:"omitempty,oneof=present absent late"`
	Date   *string                  `json:"attendance_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
