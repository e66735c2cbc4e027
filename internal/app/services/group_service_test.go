package services

import (
	"errors"
	"testing"

	"github.com/Javohir0411/global-school/internal/pkg/apperrors"
)

func TestValidateLessonDays(t *testing.T) {
	tests := []struct {
		name    string
		days    []string
		wantErr bool
	}{
		{name: "empty schedule", days: nil},
		{name: "lowercase weekdays", days: []string{"monday", "thursday"}},
		{name: "mixed case", days: []string{"Monday", "THURSDAY"}},
		{name: "unknown day", days: []string{"monday", "someday"}, wantErr: true},
		{name: "abbreviation", days: []string{"mon"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLessonDays(tt.days)
			if tt.wantErr != (err != nil) {
				t.Fatalf("validateLessonDays(%v) error = %v, wantErr %v", tt.days, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}
