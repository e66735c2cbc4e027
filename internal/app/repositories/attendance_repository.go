package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/db"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
	"github.com/Javohir0411/global-school/internal/pkg/dberrors"
	"github.com/Javohir0411/global-school/internal/pkg/helpers"
)

// AttendanceUniqueConstraint is the DB constraint enforcing one attendance
// row per (student, group, date). It backstops the in-transaction duplicate
// check against concurrent submissions for the same group and date.
const AttendanceUniqueConstraint = "uq_attendance_student_group_date"

// AttendanceRepository handles database operations for attendance records.
// It also exposes the relationship lookups the recording workflow validates
// against, so the validation path has no hidden query fan-out.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// FindTeacherByID retrieves a teacher by ID; returns nil when no row matches
func (r *AttendanceRepository) FindTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return NewTeacherRepository(r.db).GetByID(ctx, id)
}

// FindGroupByID retrieves a group by ID; returns nil when no row matches
func (r *AttendanceRepository) FindGroupByID(ctx context.Context, id int64) (*models.Group, error) {
	return NewGroupRepository(r.db).GetByID(ctx, id)
}

// FindSubjectByID retrieves a subject by ID; returns nil when no row matches
func (r *AttendanceRepository) FindSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	return NewSubjectRepository(r.db).GetByID(ctx, id)
}

// FindStudentByID retrieves a student by ID; returns nil when no row matches
func (r *AttendanceRepository) FindStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return NewStudentRepository(r.db).GetByID(ctx, id)
}

// IsGroupAssignedToTeacher checks the teacher_group_association link
func (r *AttendanceRepository) IsGroupAssignedToTeacher(ctx context.Context, groupID, teacherID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM teacher_group_association WHERE teachers_id = $1 AND groups_id = $2)`,
		teacherID, groupID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher group assignment: %w", err)
	}

	return exists, nil
}

// IsStudentInGroup checks the student_group_association link
func (r *AttendanceRepository) IsStudentInGroup(ctx context.Context, studentID, groupID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM student_group_association WHERE students_id = $1 AND groups_id = $2)`,
		studentID, groupID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking group membership: %w", err)
	}

	return exists, nil
}

// CreateBatch stages all rows of one attendance batch inside a single
// transaction and commits once. Rows are processed in submission order; the
// first (student, group, date) that already has a record aborts the whole
// batch and nothing is committed.
func (r *AttendanceRepository) CreateBatch(ctx context.Context, records []*models.Attendance) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, record := range records {
			var exists bool
			err := tx.QueryRow(ctx, `
				SELECT EXISTS(SELECT 1 FROM attendance WHERE student_id = $1 AND group_id = $2 AND attendance_date = $3)`,
				record.StudentID, record.GroupID, record.Date).Scan(&exists)
			if err != nil {
				return fmt.Errorf("error checking existing attendance: %w", err)
			}

			if exists {
				return duplicateAttendanceError(record)
			}

			query := `
				INSERT INTO attendance (teacher_id, student_id, group_id, subject_id, attendance_date, status)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`

			err = tx.QueryRow(ctx, query,
				record.TeacherID,
				record.StudentID,
				record.GroupID,
				record.SubjectID,
				record.Date,
				record.Status,
			).Scan(&record.ID)
			if err != nil {
				// A concurrent batch can slip past the pre-check; the unique
				// constraint turns that race into the same conflict error.
				if dberrors.IsDuplicateConstraintError(err, AttendanceUniqueConstraint) {
					return duplicateAttendanceError(record)
				}
				return fmt.Errorf("error inserting attendance: %w", err)
			}
		}

		return nil
	})
}

// duplicateAttendanceError builds the conflict error for a staged row
func duplicateAttendanceError(record *models.Attendance) error {
	return apperrors.NewCustomError(
		apperrors.ErrDuplicateAttendance,
		fmt.Sprintf("attendance for student %d in group %d on %s is already recorded",
			record.StudentID, record.GroupID, helpers.FormatDate(record.Date)),
	).WithDetails(map[string]interface{}{
		"student_id":      record.StudentID,
		"group_id":        record.GroupID,
		"attendance_date": helpers.FormatDate(record.Date),
	})
}

// GetByID retrieves an attendance record by ID; returns nil when no row matches
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `
		SELECT id, teacher_id, student_id, group_id, subject_id, attendance_date, status
		FROM attendance
		WHERE id = $1
	`

	var record models.Attendance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.TeacherID,
		&record.StudentID,
		&record.GroupID,
		&record.SubjectID,
		&record.Date,
		&record.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}

	return &record, nil
}

// GetAll retrieves all attendance records
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	query := `
		SELECT id, teacher_id, student_id, group_id, subject_id, attendance_date, status
		FROM attendance
		ORDER BY attendance_date DESC, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		if err := rows.Scan(
			&record.ID,
			&record.TeacherID,
			&record.StudentID,
			&record.GroupID,
			&record.SubjectID,
			&record.Date,
			&record.Status,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update replaces individual fields of an attendance record
func (r *AttendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	query := `
		UPDATE attendance
		SET attendance_date = $1, status = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, record.Date, record.Status, record.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, AttendanceUniqueConstraint) {
			return duplicateAttendanceError(record)
		}
		return fmt.Errorf("error updating attendance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes an attendance record by ID
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM attendance WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
