package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Javohir0411/global-school/internal/app/models"
	appRepos "github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
	"github.com/Javohir0411/global-school/internal/pkg/auth"
)

// Default admin account created on first startup. The password must be
// changed after the first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "changeme123"
)

// CreateDefaultData creates the default admin record and its user account if
// no user exists yet. Errors are reported to the caller but startup proceeds.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	existing, err := userRepo.GetByUsername(ctx, defaultAdminUsername)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin user")
		return err
	}
	if existing != nil {
		lgr.Debug().Msg("Default admin user already exists")
		return nil
	}

	lgr.Info().Msg("Creating default admin account...")

	admin := &appModels.Admin{
		FirstName:   "System",
		LastName:    "Administrator",
		PhoneNumber: "",
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin record")
		return err
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	user := &appModels.User{
		Username: defaultAdminUsername,
		Password: hashed,
		Role:     appModels.RoleAdmin,
		AdminID:  &admin.ID,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		// A concurrent instance may have created it first
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			lgr.Debug().Msg("Default admin user already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().
		Str("username", defaultAdminUsername).
		Msg("Default admin account created, change the password after first login")
	return nil
}
