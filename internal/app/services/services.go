package services

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Services defined in this package:
// - AuthService: login, registration and token refresh
// - AttendanceService: the attendance recording workflow and attendance CRUD
// - SubjectService, TeacherService, StudentService, GroupService: entity CRUD
//   with relationship id-list management
// - PaymentService, AdminService, UserService: entity CRUD

// isNoRows reports whether a repository error means "zero rows affected"
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
