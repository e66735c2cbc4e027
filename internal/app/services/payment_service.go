package services

import (
	"context"
	"fmt"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
	"github.com/Javohir0411/global-school/internal/pkg/helpers"
)

// PaymentService defines the interface for payment-related operations
type PaymentService interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	GetAllPayments(ctx context.Context) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, id int64, req *dto.UpdatePaymentRequest) (*models.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	paymentRepo *repositories.PaymentRepository
	studentRepo *repositories.StudentRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo *repositories.PaymentRepository, studentRepo *repositories.StudentRepository) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
	}
}

// CreatePayment records a payment for an existing student
func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error looking up student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d: %w", req.StudentID, apperrors.ErrStudentNotFound)
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment date %q", apperrors.ErrValidationFailed, req.Date)
	}

	payment := &models.Payment{
		StudentID: req.StudentID,
		Date:      date,
		Amount:    req.Amount,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("error creating payment: %w", err)
	}
	return payment, nil
}

// GetPaymentByID retrieves a payment by ID
func (s *paymentServiceImpl) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid payment ID", apperrors.ErrValidationFailed)
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payment: %w", err)
	}
	if payment == nil {
		return nil, apperrors.ErrPaymentNotFound
	}
	return payment, nil
}

// GetAllPayments retrieves all payments
func (s *paymentServiceImpl) GetAllPayments(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payments: %w", err)
	}
	return payments, nil
}

// UpdatePayment updates a payment's date and/or amount
func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, id int64, req *dto.UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := helpers.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payment date %q", apperrors.ErrValidationFailed, *req.Date)
		}
		payment.Date = date
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidationFailed)
		}
		payment.Amount = *req.Amount
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error updating payment: %w", err)
	}
	return payment, nil
}

// DeletePayment deletes a payment by ID
func (s *paymentServiceImpl) DeletePayment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid payment ID", apperrors.ErrValidationFailed)
	}

	err := s.paymentRepo.Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrPaymentNotFound
		}
		return fmt.Errorf("error deleting payment: %w", err)
	}
	return nil
}
