package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "teacher not found", err: apperrors.ErrTeacherNotFound, want: http.StatusNotFound},
		{name: "wrapped student not found", err: fmt.Errorf("student 7: %w", apperrors.ErrStudentNotFound), want: http.StatusNotFound},
		{name: "attendance not found", err: apperrors.ErrAttendanceNotFound, want: http.StatusNotFound},
		{name: "group not assigned", err: apperrors.ErrGroupNotAssignedToTeacher, want: http.StatusBadRequest},
		{name: "student not in group", err: apperrors.ErrStudentNotInGroup, want: http.StatusBadRequest},
		{name: "subject mismatch", err: apperrors.ErrSubjectMismatch, want: http.StatusBadRequest},
		{name: "validation failed", err: apperrors.ErrValidationFailed, want: http.StatusBadRequest},
		{name: "duplicate attendance", err: apperrors.ErrDuplicateAttendance, want: http.StatusConflict},
		{name: "username taken", err: apperrors.ErrUsernameTaken, want: http.StatusConflict},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "expired token", err: apperrors.ErrTokenExpired, want: http.StatusUnauthorized},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, want: http.StatusForbidden},
		{name: "unknown error", err: errors.New("out of cheese"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorDetailHidesInternals(t *testing.T) {
	detail := errorDetail(errors.New("pq: connection reset by peer"))
	if detail.Message != "Internal server error" {
		t.Errorf("Message = %q, internal errors must not leak", detail.Message)
	}
}
