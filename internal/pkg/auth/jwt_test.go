package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/Javohir0411/global-school/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "global-school.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 42, Username: "aziz", Role: models.RoleTeacher}

	accessToken, refreshToken, expiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if refreshToken == "" {
		t.Error("refresh token is empty")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "aziz" {
		t.Errorf("Username = %q, want %q", claims.Username, "aziz")
	}
	if claims.Role != models.RoleTeacher {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleTeacher)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	user := &models.User{ID: 1, Username: "aziz", Role: models.RoleTeacher}

	accessToken, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Username: "aziz", Role: models.RoleTeacher}
	accessToken, _, _, err := testJWTService(time.Hour).GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "empty header", wantErr: ErrInvalidFormat},
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
