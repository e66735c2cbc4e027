package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	CreateSubject(ctx context.Context, subject *models.Subject) (int64, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	UpdateSubject(ctx context.Context, subject *models.Subject) error
	DeleteSubject(ctx context.Context, id int64) error
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
	}
}

// validateSubject validates subject data before database operations
func (s *subjectServiceImpl) validateSubject(subject *models.Subject) error {
	if subject == nil {
		return fmt.Errorf("%w: subject is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(subject.Name) == "" {
		return fmt.Errorf("%w: subject name cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateSubject creates a new subject
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, subject *models.Subject) (int64, error) {
	if err := s.validateSubject(subject); err != nil {
		return 0, err
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return 0, fmt.Errorf("error creating subject: %w", err)
	}
	return subject.ID, nil
}

// GetSubjectByID retrieves a subject by ID
func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid subject ID", apperrors.ErrValidationFailed)
	}

	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	if subject == nil {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

// GetAllSubjects retrieves all subjects
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.subjectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// UpdateSubject updates an existing subject
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	if err := s.validateSubject(subject); err != nil {
		return err
	}
	if subject.ID <= 0 {
		return fmt.Errorf("%w: invalid subject ID", apperrors.ErrValidationFailed)
	}

	err := s.subjectRepo.Update(ctx, subject)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrSubjectNotFound
		}
		return fmt.Errorf("error updating subject: %w", err)
	}
	return nil
}

// DeleteSubject deletes a subject by ID
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid subject ID", apperrors.ErrValidationFailed)
	}

	err := s.subjectRepo.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrSubjectNotFound
		}
		return fmt.Errorf("error deleting subject: %w", err)
	}
	return nil
}
