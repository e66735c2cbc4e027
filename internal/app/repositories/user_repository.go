package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
	"github.com/Javohir0411/global-school/internal/pkg/dberrors"
	"github.com/Javohir0411/global-school/internal/pkg/helpers"
)

// UsernameUniqueConstraint is the DB constraint enforcing unique usernames
const UsernameUniqueConstraint = "users_username_key"

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user account
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, role, admin_id, teacher_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.Role,
		helpers.GetNullInt64(user.AdminID),
		helpers.GetNullInt64(user.TeacherID),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, UsernameUniqueConstraint) {
			return fmt.Errorf("user %q: %w", user.Username, apperrors.ErrUsernameTaken)
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID; returns nil when no row matches
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, password, role, admin_id, teacher_id, refresh_token, created_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByUsername retrieves a user by username; returns nil when no row matches
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, role, admin_id, teacher_id, refresh_token, created_at
		FROM users
		WHERE username = $1
	`

	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

// GetByRefreshToken retrieves a user by its stored refresh token
func (r *UserRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	query := `
		SELECT id, username, password, role, admin_id, teacher_id, refresh_token, created_at
		FROM users
		WHERE refresh_token = $1
	`

	return r.scanUser(r.db.QueryRow(ctx, query, token))
}

// GetAll retrieves all user accounts
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, username, password, role, admin_id, teacher_id, refresh_token, created_at
		FROM users
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Password,
			&user.Role,
			&user.AdminID,
			&user.TeacherID,
			&user.RefreshToken,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Update updates a user's username and password hash
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET username = $1, password = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, user.Username, user.Password, user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, UsernameUniqueConstraint) {
			return fmt.Errorf("user %q: %w", user.Username, apperrors.ErrUsernameTaken)
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SaveRefreshToken stores (or clears) the user's refresh token
func (r *UserRepository) SaveRefreshToken(ctx context.Context, userID int64, token *string) error {
	query := `UPDATE users SET refresh_token = $1 WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, helpers.GetNullString(token), userID)
	if err != nil {
		return fmt.Errorf("error saving refresh token: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a user account by ID
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// scanUser reads a single user row
func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.AdminID,
		&user.TeacherID,
		&user.RefreshToken,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}
