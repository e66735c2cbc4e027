package services

import (
	"context"
	"fmt"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

// AdminService defines the interface for admin-related operations
type AdminService interface {
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id int64) (*models.Admin, error)
	GetAllAdmins(ctx context.Context) ([]*models.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	adminRepo *repositories.AdminRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo *repositories.AdminRepository) AdminService {
	return &adminServiceImpl{
		adminRepo: adminRepo,
	}
}

// CreateAdmin creates a new admin record
func (s *adminServiceImpl) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	admin := &models.Admin{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}
	return admin, nil
}

// GetAdminByID retrieves an admin by ID
func (s *adminServiceImpl) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid admin ID", apperrors.ErrValidationFailed)
	}

	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	if admin == nil {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

// GetAllAdmins retrieves all admins
func (s *adminServiceImpl) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admins: %w", err)
	}
	return admins, nil
}

// UpdateAdmin updates an admin; nil request fields keep their current value
func (s *adminServiceImpl) UpdateAdmin(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	admin, err := s.GetAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		admin.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		admin.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		admin.PhoneNumber = *req.PhoneNumber
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error updating admin: %w", err)
	}
	return admin, nil
}

// DeleteAdmin deletes an admin by ID
func (s *adminServiceImpl) DeleteAdmin(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid admin ID", apperrors.ErrValidationFailed)
	}

	err := s.adminRepo.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrAdminNotFound
		}
		return fmt.Errorf("error deleting admin: %w", err)
	}
	return nil
}
