package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Javohir0411/global-school/internal/app/models"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create creates a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (subject_name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, subject.Name).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID; returns nil when no row matches
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, subject_name
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(&subject.ID, &subject.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetAll retrieves all subjects
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	query := `
		SELECT id, subject_name
		FROM subjects
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Update updates an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET subject_name = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, subject.Name, subject.ID)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a subject by ID
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subjects WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
