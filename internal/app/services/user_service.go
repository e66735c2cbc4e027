package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
	"github.com/Javohir0411/global-school/internal/pkg/auth"
)

// UserService defines the interface for user account operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user account by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetAllUsers retrieves all user accounts
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// UpdateUser updates a user's username and/or password
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil, apperrors.ErrUsernameTaken
		}
		if isNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// DeleteUser deletes a user account by ID
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
