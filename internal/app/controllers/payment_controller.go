package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// PaymentController handles payment-related operations
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePayment handles payment creation
// @Summary Record a payment
// @Description Records a payment made by a student
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.Payment} "Payment recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [post]
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid payment data", err)
		return
	}

	payment, err := c.paymentService.CreatePayment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, payment)
}

// GetAllPayments retrieves all payments
// @Summary Get all payments
// @Description Retrieves a list of all recorded payments
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Payment} "Payments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [get]
func (c *PaymentController) GetAllPayments(ctx *gin.Context) {
	payments, err := c.paymentService.GetAllPayments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, payments)
}

// GetPaymentByID retrieves a payment by ID
// @Summary Get payment details
// @Description Retrieves a payment by its ID
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Payment} "Payment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment ID format"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/{id} [get]
func (c *PaymentController) GetPaymentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Payment")
	if !ok {
		return
	}

	payment, err := c.paymentService.GetPaymentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, payment)
}

// UpdatePayment updates an existing payment
// @Summary Update a payment
// @Description Updates a payment's date and/or amount
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Param request body dto.UpdatePaymentRequest true "Updated payment information"
// @Success 200 {object} dto.APIResponse{data=models.Payment} "Payment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/{id} [put]
func (c *PaymentController) UpdatePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Payment")
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid payment data", err)
		return
	}

	payment, err := c.paymentService.UpdatePayment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, payment)
}

// DeletePayment deletes a payment
// @Summary Delete a payment
// @Description Deletes a payment by its ID
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Payment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment ID format"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/{id} [delete]
func (c *PaymentController) DeletePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Payment")
	if !ok {
		return
	}

	if err := c.paymentService.DeletePayment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Payment deleted successfully"})
}
