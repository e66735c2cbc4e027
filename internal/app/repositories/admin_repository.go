package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Javohir0411/global-school/internal/app/models"
)

// AdminRepository handles database operations for admins
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (admin_firstname, admin_lastname, admin_phone_number)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, admin.FirstName, admin.LastName, admin.PhoneNumber).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByID retrieves an admin by ID; returns nil when no row matches
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := `
		SELECT id, admin_firstname, admin_lastname, admin_phone_number
		FROM admins
		WHERE id = $1
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.FirstName,
		&admin.LastName,
		&admin.PhoneNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// GetAll retrieves all admins
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	query := `
		SELECT id, admin_firstname, admin_lastname, admin_phone_number
		FROM admins
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(
			&admin.ID,
			&admin.FirstName,
			&admin.LastName,
			&admin.PhoneNumber,
		); err != nil {
			return nil, err
		}
		admins = append(admins, &admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// Update updates an existing admin
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	query := `
		UPDATE admins
		SET admin_firstname = $1, admin_lastname = $2, admin_phone_number = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, admin.FirstName, admin.LastName, admin.PhoneNumber, admin.ID)
	if err != nil {
		return fmt.Errorf("error updating admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes an admin by ID
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM admins WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
