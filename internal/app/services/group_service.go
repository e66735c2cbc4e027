package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

// GroupService defines the interface for group-related operations
type GroupService interface {
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error)
	GetGroupByID(ctx context.Context, id int64) (*models.Group, error)
	GetAllGroups(ctx context.Context) ([]*models.Group, error)
	GetGroupStudents(ctx context.Context, id int64) ([]*models.Student, error)
	GetGroupTeachers(ctx context.Context, id int64) ([]*models.Teacher, error)
	UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int64) error
}

// groupServiceImpl implements the GroupService interface
type groupServiceImpl struct {
	groupRepo   *repositories.GroupRepository
	subjectRepo *repositories.SubjectRepository
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo *repositories.GroupRepository, subjectRepo *repositories.SubjectRepository) GroupService {
	return &groupServiceImpl{
		groupRepo:   groupRepo,
		subjectRepo: subjectRepo,
	}
}

// weekdays accepted in a group's lesson schedule
var validLessonDays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// validateLessonDays checks that every scheduled day is a known weekday
func validateLessonDays(days []string) error {
	for _, day := range days {
		if !validLessonDays[strings.ToLower(day)] {
			return fmt.Errorf("%w: unknown lesson day %q", apperrors.ErrValidationFailed, day)
		}
	}
	return nil
}

// checkSubjectExists verifies a referenced subject before linking it
func (s *groupServiceImpl) checkSubjectExists(ctx context.Context, subjectID *int64) error {
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

// CreateGroup creates a new group with its teacher and student links
func (s *groupServiceImpl) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	if err := validateLessonDays(req.LessonDays); err != nil {
		return nil, err
	}
	if err := s.checkSubjectExists(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:       req.Name,
		LessonTime: req.LessonTime,
		LessonDays: req.LessonDays,
		SubjectID:  req.SubjectID,
	}

	if err := s.groupRepo.Create(ctx, group, req.TeacherIDs, req.StudentIDs); err != nil {
		return nil, fmt.Errorf("error creating group: %w", err)
	}
	return group, nil
}

// GetGroupByID retrieves a group by ID
func (s *groupServiceImpl) GetGroupByID(ctx context.Context, id int64) (*models.Group, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid group ID", apperrors.ErrValidationFailed)
	}

	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}
	if group == nil {
		return nil, apperrors.ErrGroupNotFound
	}
	return group, nil
}

// GetAllGroups retrieves all groups
func (s *groupServiceImpl) GetAllGroups(ctx context.Context) ([]*models.Group, error) {
	groups, err := s.groupRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	return groups, nil
}

// GetGroupStudents retrieves the students assigned to a group
func (s *groupServiceImpl) GetGroupStudents(ctx context.Context, id int64) ([]*models.Student, error) {
	if _, err := s.GetGroupByID(ctx, id); err != nil {
		return nil, err
	}
	students, err := s.groupRepo.GetStudents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group students: %w", err)
	}
	return students, nil
}

// GetGroupTeachers retrieves the teachers assigned to a group
func (s *groupServiceImpl) GetGroupTeachers(ctx context.Context, id int64) ([]*models.Teacher, error) {
	if _, err := s.GetGroupByID(ctx, id); err != nil {
		return nil, err
	}
	teachers, err := s.groupRepo.GetTeachers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group teachers: %w", err)
	}
	return teachers, nil
}

// UpdateGroup updates a group; nil request fields keep their current value
// and nil id lists leave the associations untouched
func (s *groupServiceImpl) UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error) {
	group, err := s.GetGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.LessonTime != nil {
		group.LessonTime = *req.LessonTime
	}
	if req.LessonDays != nil {
		if err := validateLessonDays(*req.LessonDays); err != nil {
			return nil, err
		}
		group.LessonDays = *req.LessonDays
	}
	if req.SubjectID != nil {
		if err := s.checkSubjectExists(ctx, req.SubjectID); err != nil {
			return nil, err
		}
		group.SubjectID = req.SubjectID
	}

	if err := s.groupRepo.Update(ctx, group, req.TeacherIDs, req.StudentIDs); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error updating group: %w", err)
	}
	return group, nil
}

// DeleteGroup deletes a group by ID
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid group ID", apperrors.ErrValidationFailed)
	}

	err := s.groupRepo.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("error deleting group: %w", err)
	}
	return nil
}
