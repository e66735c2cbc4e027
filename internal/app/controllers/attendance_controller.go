package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/middleware"
)

// AttendanceController handles attendance recording and attendance CRUD
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// RecordAttendance records one attendance batch for a group
// @Summary Record attendance for a group
// @Description Records today's attendance for a group in one batch. The teacher must be assigned to the group, the group's subject must match the teacher's subject, and every student must be a member of the group. A group's attendance can be recorded at most once per day; a duplicate rejects the whole batch.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordAttendanceRequest true "Attendance batch"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceSummaryResponse} "Attendance recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or broken entity relationship"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Teacher, group, subject or student not found"
// @Failure 409 {object} dto.ErrorResponse "Attendance already recorded for this group and date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances [post]
func (c *AttendanceController) RecordAttendance(ctx *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid attendance data", err)
		return
	}

	summary, err := c.attendanceService.RecordBatch(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, summary)
}

// GetAllAttendances retrieves all attendance records
// @Summary Get all attendance records
// @Description Retrieves a list of all attendance records
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Attendance records retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances [get]
func (c *AttendanceController) GetAllAttendances(ctx *gin.Context) {
	records, err := c.attendanceService.GetAllAttendances(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, records)
}

// GetAttendanceByID retrieves an attendance record by ID
// @Summary Get attendance record details
// @Description Retrieves a single attendance record by its ID
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance ID format"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances/{id} [get]
func (c *AttendanceController) GetAttendanceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Attendance")
	if !ok {
		return
	}

	record, err := c.attendanceService.GetAttendanceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, record)
}

// UpdateAttendance updates an attendance record
// @Summary Update an attendance record
// @Description Updates the status and/or date of an existing attendance record
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAttendanceRequest true "Updated attendance fields"
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 409 {object} dto.ErrorResponse "Another record already exists for the new date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Attendance")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid attendance data", err)
		return
	}

	record, err := c.attendanceService.UpdateAttendance(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, record)
}

// DeleteAttendance deletes an attendance record
// @Summary Delete an attendance record
// @Description Deletes an attendance record by its ID
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Attendance record deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance ID format"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Attendance")
	if !ok {
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Attendance record deleted successfully"})
}
