package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to an HTTP status and the standard
// error envelope. Controllers call it with whatever the service returned.
func HandleAPIError(c *gin.Context, err error) {
	detail := errorDetail(err)

	// Carry over details attached to a CustomError (e.g. the conflicting
	// attendance row)
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		detail.WithDetails(customErr.Details)
	}

	c.JSON(statusFor(err), dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// statusFor resolves the HTTP status code for an application error
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrPaymentNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound),
		errors.Is(err, apperrors.ErrAttendanceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return 404
	case errors.Is(err, apperrors.ErrGroupNotAssignedToTeacher),
		errors.Is(err, apperrors.ErrStudentNotInGroup),
		errors.Is(err, apperrors.ErrSubjectMismatch),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return 400
	case errors.Is(err, apperrors.ErrDuplicateAttendance),
		errors.Is(err, apperrors.ErrUsernameTaken),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return 409
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound):
		return 401
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return 403
	default:
		return 500
	}
}

// errorDetail builds the error body for an application error
func errorDetail(err error) *dto.ErrorDetail {
	switch {
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found").WithField("teacher_id")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found").WithField("student_id")
	case errors.Is(err, apperrors.ErrGroupNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Group not found").WithField("group_id")
	case errors.Is(err, apperrors.ErrSubjectNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Subject not found")
	case errors.Is(err, apperrors.ErrPaymentNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Payment not found")
	case errors.Is(err, apperrors.ErrAdminNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Admin not found")
	case errors.Is(err, apperrors.ErrAttendanceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Attendance record not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrGroupNotAssignedToTeacher):
		return dto.NewErrorDetail(dto.ErrorCodeNotAssigned, "Group is not assigned to this teacher").WithField("group_id")
	case errors.Is(err, apperrors.ErrStudentNotInGroup):
		return dto.NewErrorDetail(dto.ErrorCodeNotAssigned, "Student is not a member of this group").WithField("student_id")
	case errors.Is(err, apperrors.ErrSubjectMismatch):
		return dto.NewErrorDetail(dto.ErrorCodeNotAssigned, "Group subject is not assigned to this teacher")
	case errors.Is(err, apperrors.ErrDuplicateAttendance):
		return dto.NewErrorDetail(dto.ErrorCodeDuplicateAttendance, "Attendance already recorded for this group and date")
	case errors.Is(err, apperrors.ErrUsernameTaken):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already registered").WithField("username")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
