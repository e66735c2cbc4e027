package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.DBName != "global_school" {
		t.Errorf("Database.DBName = %q, want %q", cfg.Database.DBName, "global_school")
	}
	if cfg.JWT.AccessTokenExpiration != "1h" {
		t.Errorf("JWT.AccessTokenExpiration = %q, want %q", cfg.JWT.AccessTokenExpiration, "1h")
	}
	if !cfg.Attendance.StrictStudents {
		t.Error("Attendance.StrictStudents = false, want true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	content := []byte(`
server:
  port: "9090"
attendance:
  strict_students: false
logging:
  level: debug
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Attendance.StrictStudents {
		t.Error("Attendance.StrictStudents = true, want false from file")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	// Sections absent from the file keep their defaults
	if cfg.Database.Port != "5432" {
		t.Errorf("Database.Port = %q, want %q", cfg.Database.Port, "5432")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("ATTENDANCE_STRICT_STUDENTS", "false")

	content := []byte(`
server:
  port: "9090"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "7070")
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("Database.MaxOpenConns = %d, want 50", cfg.Database.MaxOpenConns)
	}
	if cfg.Attendance.StrictStudents {
		t.Error("Attendance.StrictStudents = true, want false from env")
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() accepted a configuration without a JWT secret")
	}
}
