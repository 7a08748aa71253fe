package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is used when no SECRET_KEY is configured. Not safe for production.
const DefaultSecretKey = "dev-secret-key-change-in-production"

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type Config struct {
	Port         int
	Env          string
	SecretKey    string
	MapsAPIKey   string
	PollFile     string
	DatabaseURL  string
	DatabaseType string
	LogLevel     slog.Level
}

// InsecureSecret reports whether the built-in development secret is in use
func (c Config) InsecureSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// AuditEnabled reports whether a database was configured for the audit trail
func (c Config) AuditEnabled() bool {
	return c.DatabaseURL != ""
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("simple-poll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Env, "env", "", "Runtime environment (dev or prod)")
	fs.StringVar(&cfg.PollFile, "poll", "", "YAML poll file (default: built-in poll)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Optional audit trail database
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Audit database URL (empty disables the audit trail)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SecretKey, "secret", "", "Secret key (prefer env)")
	fs.StringVar(&cfg.MapsAPIKey, "maps-key", "", "Google Maps API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
		if cfg.Env == "" {
			cfg.Env = EnvProd
		}
	}
	if cfg.Env != EnvDev && cfg.Env != EnvProd {
		return Config{}, fmt.Errorf("unknown env %q (use dev or prod)", cfg.Env)
	}

	if cfg.PollFile == "" {
		cfg.PollFile = os.Getenv("POLL_FILE")
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - optional, with an insecure fallback
	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("SECRET_KEY")
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = DefaultSecretKey
	}

	if cfg.MapsAPIKey == "" {
		cfg.MapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}

	return cfg, nil
}
