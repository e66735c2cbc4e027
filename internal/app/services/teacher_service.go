package services

import (
	"context"
	"fmt"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherGroups(ctx context.Context, id int64) ([]*models.Group, error)
	GetTeacherStudents(ctx context.Context, id int64) ([]*models.Student, error)
	UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teacherRepo *repositories.TeacherRepository
	subjectRepo *repositories.SubjectRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository, subjectRepo *repositories.SubjectRepository) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		subjectRepo: subjectRepo,
	}
}

// checkSubjectExists verifies a referenced subject before linking it
func (s *teacherServiceImpl) checkSubjectExists(ctx context.Context, subjectID *int64) error {
	if subjectID == nil {
		return nil
	}
	subject, err := s.subjectRepo.GetByID(ctx, *subjectID)
	if err != nil {
		return fmt.Errorf("error looking up subject: %w", err)
	}
	if subject == nil {
		return fmt.Errorf("subject %d: %w", *subjectID, apperrors.ErrSubjectNotFound)
	}
	return nil
}

// CreateTeacher creates a new teacher with its group and student links
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.checkSubjectExists(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		SubjectID:   req.SubjectID,
	}

	if err := s.teacherRepo.Create(ctx, teacher, req.GroupIDs, req.StudentIDs); err != nil {
		return nil, fmt.Errorf("error creating teacher: %w", err)
	}
	return teacher, nil
}

// GetTeacherByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.ErrTeacherNotFound
	}
	return teacher, nil
}

// GetAllTeachers retrieves all teachers
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// GetTeacherGroups retrieves the groups assigned to a teacher
func (s *teacherServiceImpl) GetTeacherGroups(ctx context.Context, id int64) ([]*models.Group, error) {
	if _, err := s.GetTeacherByID(ctx, id); err != nil {
		return nil, err
	}
	groups, err := s.teacherRepo.GetGroups(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher groups: %w", err)
	}
	return groups, nil
}

// GetTeacherStudents retrieves the students assigned to a teacher
func (s *teacherServiceImpl) GetTeacherStudents(ctx context.Context, id int64) ([]*models.Student, error) {
	if _, err := s.GetTeacherByID(ctx, id); err != nil {
		return nil, err
	}
	students, err := s.teacherRepo.GetStudents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher students: %w", err)
	}
	return students, nil
}

// UpdateTeacher updates a teacher; nil request fields keep their current
// value and nil id lists leave the associations untouched
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.GetTeacherByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		teacher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		teacher.PhoneNumber = *req.PhoneNumber
	}
	if req.SubjectID != nil {
		if err := s.checkSubjectExists(ctx, req.SubjectID); err != nil {
			return nil, err
		}
		teacher.SubjectID = req.SubjectID
	}

	if err := s.teacherRepo.Update(ctx, teacher, req.GroupIDs, req.StudentIDs); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error updating teacher: %w", err)
	}
	return teacher, nil
}

// DeleteTeacher deletes a teacher by ID
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	err := s.teacherRepo.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	return nil
}
