package services

import (
	"context"
	"fmt"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentGroups(ctx context.Context, id int64) ([]*models.Group, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// CreateStudent creates a new student with its group and teacher links
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		PhoneNumber:        req.PhoneNumber,
		ParentsFullName:    req.ParentsFullName,
		ParentsPhoneNumber: req.ParentsPhoneNumber,
		AdditionalInfo:     req.AdditionalInfo,
	}

	if err := s.studentRepo.Create(ctx, student, req.GroupIDs, req.TeacherIDs); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentGroups retrieves the groups a student belongs to
func (s *studentServiceImpl) GetStudentGroups(ctx context.Context, id int64) ([]*models.Group, error) {
	if _, err := s.GetStudentByID(ctx, id); err != nil {
		return nil, err
	}
	groups, err := s.studentRepo.GetGroups(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student groups: %w", err)
	}
	return groups, nil
}

// UpdateStudent updates a student; nil request fields keep their current
// value and nil id lists leave the associations untouched
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		student.PhoneNumber = *req.PhoneNumber
	}
	if req.ParentsFullName != nil {
		student.ParentsFullName = *req.ParentsFullName
	}
	if req.ParentsPhoneNumber != nil {
		student.ParentsPhoneNumber = *req.ParentsPhoneNumber
	}
	if req.AdditionalInfo != nil {
		student.AdditionalInfo = *req.AdditionalInfo
	}

	if err := s.studentRepo.Update(ctx, student, req.GroupIDs, req.TeacherIDs); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
