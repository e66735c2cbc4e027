package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// AdminController handles admin-related operations
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// CreateAdmin handles admin creation
// @Summary Create a new admin
// @Description Creates a new admin record
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=models.Admin} "Admin created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid admin data", err)
		return
	}

	admin, err := c.adminService.CreateAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, admin)
}

// GetAllAdmins retrieves all admins
// @Summary Get all admins
// @Description Retrieves a list of all admins
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Admin} "Admins retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins [get]
func (c *AdminController) GetAllAdmins(ctx *gin.Context) {
	admins, err := c.adminService.GetAllAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, admins)
}

// GetAdminByID retrieves an admin by ID
// @Summary Get admin details
// @Description Retrieves an admin by its ID
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid admin ID format"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins/{id} [get]
func (c *AdminController) GetAdminByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Admin")
	if !ok {
		return
	}

	admin, err := c.adminService.GetAdminByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, admin)
}

// UpdateAdmin updates an existing admin
// @Summary Update an admin
// @Description Updates an admin; omitted fields keep their current values
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAdminRequest true "Updated admin information"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Admin")
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid admin data", err)
		return
	}

	admin, err := c.adminService.UpdateAdmin(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, admin)
}

// DeleteAdmin deletes an admin
// @Summary Delete an admin
// @Description Deletes an admin by its ID
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Admin deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid admin ID format"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Admin")
	if !ok {
		return
	}

	if err := c.adminService.DeleteAdmin(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Admin deleted successfully"})
}
