package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// CreateSubject handles subject creation
// @Summary Create a new subject
// @Description Creates a new subject with the provided name
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid subject data", err)
		return
	}

	subject := &models.Subject{Name: req.Name}
	if _, err := c.subjectService.CreateSubject(ctx, subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, subject)
}

// GetAllSubjects retrieves all subjects
// @Summary Get all subjects
// @Description Retrieves a list of all subjects
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAllSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, subjects)
}

// GetSubjectByID retrieves a subject by ID
// @Summary Get subject details
// @Description Retrieves a subject by its ID
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID format"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubjectByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Subject")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, subject)
}

// UpdateSubject updates an existing subject
// @Summary Update a subject
// @Description Updates an existing subject's name
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSubjectRequest true "Updated subject information"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Subject")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid subject data", err)
		return
	}

	subject := &models.Subject{ID: id, Name: req.Name}
	if err := c.subjectService.UpdateSubject(ctx, subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, subject)
}

// DeleteSubject deletes a subject
// @Summary Delete a subject
// @Description Deletes a subject by its ID
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Subject deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID format"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Subject")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Subject deleted successfully"})
}
