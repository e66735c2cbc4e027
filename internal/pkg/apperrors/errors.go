package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User account errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already registered")
)

// Entity errors
var (
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAttendanceNotFound = errors.New("attendance not found")
)

// Relationship graph errors. An attendance batch is rejected as a whole when
// any of these checks fails.
var (
	ErrGroupNotAssignedToTeacher = errors.New("group is not assigned to this teacher")
	ErrStudentNotInGroup         = errors.New("student is not a member of this group")
	ErrSubjectMismatch           = errors.New("group subject is not assigned to this teacher")
	ErrDuplicateAttendance       = errors.New("attendance already recorded for this date")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
