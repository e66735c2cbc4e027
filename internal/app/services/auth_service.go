package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Javohir0411/global-school/internal/app/models"
	"github.com/Javohir0411/global-school/internal/app/models/dto"
	"github.com/Javohir0411/global-school/internal/app/repositories"
	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
	"github.com/Javohir0411/global-school/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo    *repositories.UserRepository
	adminRepo   *repositories.AdminRepository
	teacherRepo *repositories.TeacherRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	adminRepo *repositories.AdminRepository,
	teacherRepo *repositories.TeacherRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		teacherRepo: teacherRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a new user account linked to an admin or teacher record
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}

	switch req.Role {
	case models.RoleAdmin:
		if req.AdminID == nil {
			return nil, fmt.Errorf("%w: admin_id is required for the admin role", apperrors.ErrValidationFailed)
		}
		admin, err := s.adminRepo.GetByID(ctx, *req.AdminID)
		if err != nil {
			return nil, fmt.Errorf("error looking up admin: %w", err)
		}
		if admin == nil {
			return nil, fmt.Errorf("admin %d: %w", *req.AdminID, apperrors.ErrAdminNotFound)
		}
	case models.RoleTeacher:
		if req.TeacherID == nil {
			return nil, fmt.Errorf("%w: teacher_id is required for the teacher role", apperrors.ErrValidationFailed)
		}
		teacher, err := s.teacherRepo.GetByID(ctx, *req.TeacherID)
		if err != nil {
			return nil, fmt.Errorf("error looking up teacher: %w", err)
		}
		if teacher == nil {
			return nil, fmt.Errorf("teacher %d: %w", *req.TeacherID, apperrors.ErrTeacherNotFound)
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hashed,
		Role:      req.Role,
		AdminID:   req.AdminID,
		TeacherID: req.TeacherID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("User registered")

	return userResponse(user), nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		// Same error for unknown username and wrong password
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates the refresh token and issues a new access token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("error looking up refresh token: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrTokenInvalid
	}

	return s.issueTokens(ctx, user)
}

// Logout clears the user's stored refresh token
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	err := s.userRepo.SaveRefreshToken(ctx, userID, nil)
	if err != nil {
		if isNoRows(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error clearing refresh token: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Msg("User logged out")
	return nil
}

// issueTokens generates and persists a fresh token pair for the user
func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.userRepo.SaveRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return nil, fmt.Errorf("error saving refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:  accessToken,
			TokenType:    "Bearer",
			ExpiresIn:    expiresIn,
			RefreshToken: refreshToken,
		},
		User: userResponse(user),
	}, nil
}

// userResponse maps a user model to its response DTO
func userResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		AdminID:   user.AdminID,
		TeacherID: user.TeacherID,
	}
}
