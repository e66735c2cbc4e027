package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/pkg/helpers"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Create creates a new teacher together with its group and student links
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher, groupIDs, studentIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO teachers (teacher_firstname, teacher_lastname, teacher_phone_number, teacher_subject_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		teacher.FirstName,
		teacher.LastName,
		teacher.PhoneNumber,
		helpers.GetNullInt64(teacher.SubjectID),
	).Scan(&teacher.ID)
	if err != nil {
		return fmt.Errorf("error creating teacher: %w", err)
	}

	if err := replaceTeacherGroups(ctx, tx, teacher.ID, groupIDs); err != nil {
		return err
	}
	if err := replaceTeacherStudents(ctx, tx, teacher.ID, studentIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a teacher by ID; returns nil when no row matches
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, teacher_firstname, teacher_lastname, teacher_phone_number, teacher_subject_id
		FROM teachers
		WHERE id = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.PhoneNumber,
		&teacher.SubjectID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetAll retrieves all teachers
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT id, teacher_firstname, teacher_lastname, teacher_phone_number, teacher_subject_id
		FROM teachers
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.FirstName,
			&teacher.LastName,
			&teacher.PhoneNumber,
			&teacher.SubjectID,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// GetGroups retrieves the groups assigned to a teacher
func (r *TeacherRepository) GetGroups(ctx context.Context, teacherID int64) ([]*models.Group, error) {
	query := `
		SELECT g.id, g.group_name, g.lesson_time, g.lesson_days, g.group_subject_id
		FROM groups g
		JOIN teacher_group_association tg ON tg.groups_id = g.id
		WHERE tg.teachers_id = $1
		ORDER BY g.id
	`

	rows, err := r.db.Query(ctx, query, teacherID)
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

// GetStudents retrieves the students assigned to a teacher
func (r *TeacherRepository) GetStudents(ctx context.Context, teacherID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_firstname, s.student_lastname, s.student_phone_number,
		       s.student_parents_fullname, s.student_parents_phone_number, s.student_additional_info
		FROM students s
		JOIN teacher_students_association ts ON ts.students_id = s.id
		WHERE ts.teachers_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update updates an existing teacher. Group and student links are replaced
// only when the corresponding slice pointer is non-nil.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher, groupIDs, studentIDs *[]int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE teachers
		SET teacher_firstname = $1, teacher_lastname = $2, teacher_phone_number = $3, teacher_subject_id = $4
		WHERE id = $5
	`

	cmdTag, err := tx.Exec(ctx, query,
		teacher.FirstName,
		teacher.LastName,
		teacher.PhoneNumber,
		helpers.GetNullInt64(teacher.SubjectID),
		teacher.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if groupIDs != nil {
		if err := replaceTeacherGroups(ctx, tx, teacher.ID, *groupIDs); err != nil {
			return err
		}
	}
	if studentIDs != nil {
		if err := replaceTeacherStudents(ctx, tx, teacher.ID, *studentIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete deletes a teacher by ID; association and attendance rows cascade
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM teachers WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// replaceTeacherGroups rewrites the teacher_group_association rows for a teacher
func replaceTeacherGroups(ctx context.Context, tx pgx.Tx, teacherID int64, groupIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM teacher_group_association WHERE teachers_id = $1`, teacherID); err != nil {
		return fmt.Errorf("error clearing teacher groups: %w", err)
	}

	for _, groupID := range groupIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO teacher_group_association (teachers_id, groups_id) VALUES ($1, $2)`,
			teacherID, groupID)
		if err != nil {
			return fmt.Errorf("error assigning group %d to teacher: %w", groupID, err)
		}
	}

	return nil
}

// replaceTeacherStudents rewrites the teacher_students_association rows for a teacher
func replaceTeacherStudents(ctx context.Context, tx pgx.Tx, teacherID int64, studentIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM teacher_students_association WHERE teachers_id = $1`, teacherID); err != nil {
		return fmt.Errorf("error clearing teacher students: %w", err)
	}

	for _, studentID := range studentIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO teacher_students_association (teachers_id, students_id) VALUES ($1, $2)`,
			teacherID, studentID)
		if err != nil {
			return fmt.Errorf("error assigning student %d to teacher: %w", studentID, err)
		}
	}

	return nil
}
