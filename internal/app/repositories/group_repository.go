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

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

// Create creates a new group together with its teacher and student links
func (r *GroupRepository) Create(ctx context.Context, group *models.Group, teacherIDs, studentIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO groups (group_name, lesson_time, lesson_days, group_subject_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		group.Name,
		group.LessonTime,
		group.LessonDays,
		helpers.GetNullInt64(group.SubjectID),
	).Scan(&group.ID)
	if err != nil {
		return fmt.Errorf("error creating group: %w", err)
	}

	if err := replaceGroupTeachers(ctx, tx, group.ID, teacherIDs); err != nil {
		return err
	}
	if err := replaceGroupStudents(ctx, tx, group.ID, studentIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a group by ID; returns nil when no row matches
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	query := `
		SELECT id, group_name, lesson_time, lesson_days, group_subject_id
		FROM groups
		WHERE id = $1
	`

	var group models.Group
	err := r.db.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.LessonTime,
		&group.LessonDays,
		&group.SubjectID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	return &group, nil
}

// GetAll retrieves all groups
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.Group, error) {
	query := `
		SELECT id, group_name, lesson_time, lesson_days, group_subject_id
		FROM groups
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
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

// GetStudents retrieves the students assigned to a group
func (r *GroupRepository) GetStudents(ctx context.Context, groupID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_firstname, s.student_lastname, s.student_phone_number,
		       s.student_parents_fullname, s.student_parents_phone_number, s.student_additional_info
		FROM students s
		JOIN student_group_association sg ON sg.students_id = s.id
		WHERE sg.groups_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetTeachers retrieves the teachers assigned to a group
func (r *GroupRepository) GetTeachers(ctx context.Context, groupID int64) ([]*models.Teacher, error) {
	query := `
		SELECT t.id, t.teacher_firstname, t.teacher_lastname, t.teacher_phone_number, t.teacher_subject_id
		FROM teachers t
		JOIN teacher_group_association tg ON tg.teachers_id = t.id
		WHERE tg.groups_id = $1
		ORDER BY t.id
	`

	rows, err := r.db.Query(ctx, query, groupID)
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

// Update updates an existing group. Teacher and student links are replaced
// only when the corresponding slice pointer is non-nil.
func (r *GroupRepository) Update(ctx context.Context, group *models.Group, teacherIDs, studentIDs *[]int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE groups
		SET group_name = $1, lesson_time = $2, lesson_days = $3, group_subject_id = $4
		WHERE id = $5
	`

	cmdTag, err := tx.Exec(ctx, query,
		group.Name,
		group.LessonTime,
		group.LessonDays,
		helpers.GetNullInt64(group.SubjectID),
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if teacherIDs != nil {
		if err := replaceGroupTeachers(ctx, tx, group.ID, *teacherIDs); err != nil {
			return err
		}
	}
	if studentIDs != nil {
		if err := replaceGroupStudents(ctx, tx, group.ID, *studentIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete deletes a group by ID; association and attendance rows cascade
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM groups WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// replaceGroupTeachers rewrites the teacher_group_association rows for a group
func replaceGroupTeachers(ctx context.Context, tx pgx.Tx, groupID int64, teacherIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM teacher_group_association WHERE groups_id = $1`, groupID); err != nil {
		return fmt.Errorf("error clearing group teachers: %w", err)
	}

	for _, teacherID := range teacherIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO teacher_group_association (teachers_id, groups_id) VALUES ($1, $2)`,
			teacherID, groupID)
		if err != nil {
			return fmt.Errorf("error assigning teacher %d to group: %w", teacherID, err)
		}
	}

	return nil
}

// replaceGroupStudents rewrites the student_group_association rows for a group
func replaceGroupStudents(ctx context.Context, tx pgx.Tx, groupID int64, studentIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM student_group_association WHERE groups_id = $1`, groupID); err != nil {
		return fmt.Errorf("error clearing group students: %w", err)
	}

	for _, studentID := range studentIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO student_group_association (students_id, groups_id) VALUES ($1, $2)`,
			studentID, groupID)
		if err != nil {
			return fmt.Errorf("error assigning student %d to group: %w", studentID, err)
		}
	}

	return nil
}
