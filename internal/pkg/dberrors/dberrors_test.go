package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_student_group_date"}

	if !IsUniqueViolation(uniqueErr) {
		t.Error("IsUniqueViolation() = false for a 23505 error")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)) {
		t.Error("IsUniqueViolation() = false for a wrapped 23505 error")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("IsUniqueViolation() = true for a foreign key violation")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Error("IsUniqueViolation() = true for a plain error")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	if !IsDuplicateConstraintError(err, "users_username_key") {
		t.Error("IsDuplicateConstraintError() = false for a matching constraint")
	}
	if IsDuplicateConstraintError(err, "uq_attendance_student_group_date") {
		t.Error("IsDuplicateConstraintError() = true for a different constraint")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("IsForeignKeyViolation() = false for a 23503 error")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("IsForeignKeyViolation() = true for a unique violation")
	}
}
