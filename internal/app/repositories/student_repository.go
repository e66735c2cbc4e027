package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Javohir0411/global-school/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student together with its group and teacher links
func (r *StudentRepository) Create(ctx context.Context, student *models.Student, groupIDs, teacherIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO students (student_firstname, student_lastname, student_phone_number,
		                      student_parents_fullname, student_parents_phone_number, student_additional_info)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		student.FirstName,
		student.LastName,
		student.PhoneNumber,
		student.ParentsFullName,
		student.ParentsPhoneNumber,
		student.AdditionalInfo,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	if err := replaceStudentGroups(ctx, tx, student.ID, groupIDs); err != nil {
		return err
	}
	if err := replaceStudentTeachers(ctx, tx, student.ID, teacherIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a student by ID; returns nil when no row matches
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, student_firstname, student_lastname, student_phone_number,
		       student_parents_fullname, student_parents_phone_number, student_additional_info
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.PhoneNumber,
		&student.ParentsFullName,
		&student.ParentsPhoneNumber,
		&student.AdditionalInfo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, student_firstname, student_lastname, student_phone_number,
		       student_parents_fullname, student_parents_phone_number, student_additional_info
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update updates an existing student. Group and teacher links are replaced
// only when the corresponding slice pointer is non-nil.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student, groupIDs, teacherIDs *[]int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE students
		SET student_firstname = $1, student_lastname = $2, student_phone_number = $3,
		    student_parents_fullname = $4, student_parents_phone_number = $5, student_additional_info = $6
		WHERE id = $7
	`

	cmdTag, err := tx.Exec(ctx, query,
		student.FirstName,
		student.LastName,
		student.PhoneNumber,
		student.ParentsFullName,
		student.ParentsPhoneNumber,
		student.AdditionalInfo,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if groupIDs != nil {
		if err := replaceStudentGroups(ctx, tx, student.ID, *groupIDs); err != nil {
			return err
		}
	}
	if teacherIDs != nil {
		if err := replaceStudentTeachers(ctx, tx, student.ID, *teacherIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete deletes a student by ID; association, attendance and payment rows cascade
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// GetGroups retrieves the groups a student belongs to
func (r *StudentRepository) GetGroups(ctx context.Context, studentID int64) ([]*models.Group, error) {
	query := `
		SELECT g.id, g.group_name, g.lesson_time, g.lesson_days, g.group_subject_id
		FROM groups g
		JOIN student_group_association sg ON sg.groups_id = g.id
		WHERE sg.students_id = $1
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.LessonTime,
			&group.LessonDays,
			&group.SubjectID,
		); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// scanStudents collects student rows; shared by the student and teacher repositories
func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.PhoneNumber,
			&student.ParentsFullName,
			&student.ParentsPhoneNumber,
			&student.AdditionalInfo,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// replaceStudentGroups rewrites the student_group_association rows for a student
func replaceStudentGroups(ctx context.Context, tx pgx.Tx, studentID int64, groupIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM student_group_association WHERE students_id = $1`, studentID); err != nil {
		return fmt.Errorf("error clearing student groups: %w", err)
	}

	for _, groupID := range groupIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO student_group_association (students_id, groups_id) VALUES ($1, $2)`,
			studentID, groupID)
		if err != nil {
			return fmt.Errorf("error assigning group %d to student: %w", groupID, err)
		}
	}

	return nil
}

// replaceStudentTeachers rewrites the teacher_students_association rows for a student
func replaceStudentTeachers(ctx context.Context, tx pgx.Tx, studentID int64, teacherIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM teacher_students_association WHERE students_id = $1`, studentID); err != nil {
		return fmt.Errorf("error clearing student teachers: %w", err)
	}

	for _, teacherID := range teacherIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO teacher_students_association (teachers_id, students_id) VALUES ($1, $2)`,
			teacherID, studentID)
		if err != nil {
			return fmt.Errorf("error assigning teacher %d to student: %w", teacherID, err)
		}
	}

	return nil
}
