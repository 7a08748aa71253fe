// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var configEnv = []string{
	"PORT", "APP_ENV", "POLL_FILE", "LOG_LEVEL", "DATABASE_URL",
	"DATABASE_TYPE", "SECRET_KEY", "GOOGLE_MAPS_API_KEY",
}

// clearConfigEnv blanks every variable ParseFlags reads; t.Setenv restores them afterwards
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Port)
	}
	if cfg.Env != EnvProd {
		t.Errorf("expected env prod, got %q", cfg.Env)
	}
	if !cfg.InsecureSecret() {
		t.Error("expected the insecure default secret")
	}
	if cfg.MapsAPIKey != "" {
		t.Errorf("expected empty maps key, got %q", cfg.MapsAPIKey)
	}
	if cfg.AuditEnabled() {
		t.Error("audit trail should be disabled without a database URL")
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info log level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("GOOGLE_MAPS_API_KEY", "maps-key")
	t.Setenv("POLL_FILE", "poll.yml")
	t.Setenv("DATABASE_URL", "file:audit.db")
	t.Setenv("DATABASE_TYPE", "SQLite")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Env != EnvDev {
		t.Errorf("expected env dev, got %q", cfg.Env)
	}
	if cfg.SecretKey != "s3cret" || cfg.InsecureSecret() {
		t.Errorf("expected secret from env, got %q", cfg.SecretKey)
	}
	if cfg.MapsAPIKey != "maps-key" {
		t.Errorf("expected maps key from env, got %q", cfg.MapsAPIKey)
	}
	if cfg.PollFile != "poll.yml" {
		t.Errorf("expected poll file from env, got %q", cfg.PollFile)
	}
	if !cfg.AuditEnabled() || cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite audit database, got %q %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug log level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SECRET_KEY", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-secret", "from-cli", "-maps-key", "k", "-t", "postgres", "-d", "postgres://x"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SecretKey != "from-cli" {
		t.Errorf("CLI should override env: expected from-cli, got %q", cfg.SecretKey)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"non-numeric PORT", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unknown env", nil, []string{"-env", "staging"}},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "loud"}, nil},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearConfigEnv(t)
	os.Unsetenv("GOOGLE_MAPS_API_KEY")

	path := filepath.Join(t.TempDir(), ".env")
	content := "GOOGLE_MAPS_API_KEY=from-dotenv\nSECRET_KEY=dotenv-secret\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Already-set variables are not overridden
	t.Setenv("SECRET_KEY", "already-set")
	if err := LoadEnvFile(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("GOOGLE_MAPS_API_KEY"); got != "from-dotenv" {
		t.Errorf("expected maps key from .env, got %q", got)
	}
	if got := os.Getenv("SECRET_KEY"); got != "already-set" {
		t.Errorf("expected existing SECRET_KEY to win, got %q", got)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
