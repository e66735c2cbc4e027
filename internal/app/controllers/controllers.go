package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
)

// Controllers defined in this package:
// - AuthController: registration, login, token refresh, logout
// - AttendanceController: the attendance recording endpoint and attendance CRUD
// - SubjectController, TeacherController, StudentController, GroupController,
//   PaymentController, AdminController, UserController: entity CRUD endpoints

// parseIDParam parses the :id path parameter. On failure it writes the 400
// response and returns false.
func parseIDParam(ctx *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+resource+" ID")
		errorDetail = errorDetail.WithDetails(resource + " ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// respondData writes the standard success envelope
func respondData(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

// respondBindError writes the 400 response for a request binding failure
func respondBindError(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
