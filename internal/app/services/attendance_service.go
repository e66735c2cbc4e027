package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
	"github.com/Javohir0411/global-school/internal/pkg/helpers"
)

// AttendanceStore is the persistence surface the attendance workflow needs:
// entity lookups, the two relationship checks, and the batch write. The
// AttendanceRepository satisfies it against Postgres.
type AttendanceStore interface {
	FindTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	FindGroupByID(ctx context.Context, id int64) (*models.Group, error)
	FindSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	FindStudentByID(ctx context.Context, id int64) (*models.Student, error)
	IsGroupAssignedToTeacher(ctx context.Context, groupID, teacherID int64) (bool, error)
	IsStudentInGroup(ctx context.Context, studentID, groupID int64) (bool, error)
	CreateBatch(ctx context.Context, records []*models.Attendance) error

	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	GetAll(ctx context.Context) ([]*models.Attendance, error)
	Update(ctx context.Context, record *models.Attendance) error
	Delete(ctx context.Context, id int64) error
}

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	RecordBatch(ctx context.Context, req *dto.RecordAttendanceRequest) (*dto.AttendanceSummaryResponse, error)
	GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error)
	GetAllAttendances(ctx context.Context) ([]*models.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) error
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	store          AttendanceStore
	strictStudents bool
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service instance. When
// strictStudents is true a batch naming an unknown student fails with a
// not-found error; when false the unknown student is skipped and the rest of
// the batch is recorded.
func NewAttendanceService(store AttendanceStore, strictStudents bool) AttendanceService {
	return &attendanceServiceImpl{
		store:          store,
		strictStudents: strictStudents,
		now:            time.Now,
	}
}

// resolvedMark pairs a verified student with the submitted status
type resolvedMark struct {
	student *models.Student
	status  models.AttendanceStatus
}

// resolvedBatch bundles the entities a submission was validated against
type resolvedBatch struct {
	teacher *models.Teacher
	group   *models.Group
	subject *models.Subject
	marks   []resolvedMark
}

// validateBatch checks the relationship graph for one submission. It is a
// pure read: teacher and group must exist, the group must be assigned to the
// teacher, the group's subject must exist and match the teacher's, and every
// student must be a member of the group. Marks keep their submission order.
func (s *attendanceServiceImpl) validateBatch(ctx context.Context, req *dto.RecordAttendanceRequest) (*resolvedBatch, error) {
	teacher, err := s.store.FindTeacherByID(ctx, req.TeacherID)
	if err != nil {
		return nil, fmt.Errorf("error looking up teacher: %w", err)
	}
	if teacher == nil {
		return nil, fmt.Errorf("teacher %d: %w", req.TeacherID, apperrors.ErrTeacherNotFound)
	}

	group, err := s.store.FindGroupByID(ctx, req.GroupID)
	if err != nil {
		return nil, fmt.Errorf("error looking up group: %w", err)
	}
	if group == nil {
		return nil, fmt.Errorf("group %d: %w", req.GroupID, apperrors.ErrGroupNotFound)
	}

	assigned, err := s.store.IsGroupAssignedToTeacher(ctx, group.ID, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking group assignment: %w", err)
	}
	if !assigned {
		return nil, fmt.Errorf("group %d is not assigned to teacher %d: %w",
			group.ID, teacher.ID, apperrors.ErrGroupNotAssignedToTeacher)
	}

	if group.SubjectID == nil {
		return nil, fmt.Errorf("group %d has no subject: %w", group.ID, apperrors.ErrSubjectNotFound)
	}
	subject, err := s.store.FindSubjectByID(ctx, *group.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("error looking up subject: %w", err)
	}
	if subject == nil {
		return nil, fmt.Errorf("subject %d: %w", *group.SubjectID, apperrors.ErrSubjectNotFound)
	}

	if teacher.SubjectID == nil || *teacher.SubjectID != subject.ID {
		return nil, fmt.Errorf("subject %q is not assigned to teacher %d: %w",
			subject.Name, teacher.ID, apperrors.ErrSubjectMismatch)
	}

	marks := make([]resolvedMark, 0, len(req.Attendance))
	for _, mark := range req.Attendance {
		if !mark.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown attendance status %q", apperrors.ErrValidationFailed, mark.Status)
		}

		student, err := s.store.FindStudentByID(ctx, mark.StudentID)
		if err != nil {
			return nil, fmt.Errorf("error looking up student: %w", err)
		}
		if student == nil {
			if s.strictStudents {
				return nil, fmt.Errorf("student %d: %w", mark.StudentID, apperrors.ErrStudentNotFound)
			}
			continue
		}

		member, err := s.store.IsStudentInGroup(ctx, student.ID, group.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking group membership: %w", err)
		}
		if !member {
			return nil, fmt.Errorf("student %d is not in group %d: %w",
				student.ID, group.ID, apperrors.ErrStudentNotInGroup)
		}

		marks = append(marks, resolvedMark{student: student, status: mark.Status})
	}

	return &resolvedBatch{
		teacher: teacher,
		group:   group,
		subject: subject,
		marks:   marks,
	}, nil
}

// RecordBatch validates one submission and records it for today. The whole
// batch is written in a single transaction; a duplicate for any student rolls
// every row back and nothing is recorded.
func (s *attendanceServiceImpl) RecordBatch(ctx context.Context, req *dto.RecordAttendanceRequest) (*dto.AttendanceSummaryResponse, error) {
	batch, err := s.validateBatch(ctx, req)
	if err != nil {
		return nil, err
	}

	date := s.now().UTC().Truncate(24 * time.Hour)

	records := make([]*models.Attendance, 0, len(batch.marks))
	for _, mark := range batch.marks {
		records = append(records, &models.Attendance{
			TeacherID: batch.teacher.ID,
			StudentID: mark.student.ID,
			GroupID:   batch.group.ID,
			SubjectID: batch.subject.ID,
			Date:      date,
			Status:    mark.status,
		})
	}

	if len(records) > 0 {
		if err := s.store.CreateBatch(ctx, records); err != nil {
			return nil, err
		}
	}

	summary := &dto.AttendanceSummaryResponse{
		TeacherName: batch.teacher.FullName(),
		GroupName:   batch.group.Name,
		SubjectName: batch.subject.Name,
		Date:        helpers.FormatDate(date),
		LessonDays:  batch.group.LessonDays,
		LessonTime:  batch.group.LessonTime,
		Students:    make([]dto.RecordedStudent, 0, len(batch.marks)),
	}
	for _, mark := range batch.marks {
		summary.Students = append(summary.Students, dto.RecordedStudent{
			StudentName: mark.student.FullName(),
			Status:      mark.status,
		})
	}

	return summary, nil
}

// GetAttendanceByID retrieves an attendance record by ID
func (s *attendanceServiceImpl) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid attendance ID", apperrors.ErrValidationFailed)
	}

	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	if record == nil {
		return nil, apperrors.ErrAttendanceNotFound
	}
	return record, nil
}

// GetAllAttendances retrieves all attendance records
func (s *attendanceServiceImpl) GetAllAttendances(ctx context.Context) ([]*models.Attendance, error) {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendances: %w", err)
	}
	return records, nil
}

// UpdateAttendance updates the status and/or date of an attendance record
func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	record, err := s.GetAttendanceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown attendance status %q", apperrors.ErrValidationFailed, *req.Status)
		}
		record.Status = *req.Status
	}
	if req.Date != nil {
		date, err := helpers.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid attendance date %q", apperrors.ErrValidationFailed, *req.Date)
		}
		record.Date = date
	}

	if err := s.store.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteAttendance deletes an attendance record by ID
func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid attendance ID", apperrors.ErrValidationFailed)
	}

	err := s.store.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrAttendanceNotFound
		}
		return fmt.Errorf("error deleting attendance: %w", err)
	}
	return nil
}
