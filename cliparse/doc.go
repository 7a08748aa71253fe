// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - Env: dev or prod (default: prod); prod minifies pages and assets
  - SecretKey: Secret for IP hashing in the audit trail (default: insecure dev key)
  - MapsAPIKey: Google Maps API key for the map widget (optional)
  - PollFile: YAML file with the question and seed options (optional)
  - DatabaseURL: Audit trail database (optional; empty disables it)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel: debug, info, warn, error (default: info)

# CLI Flags

	-p          Server port
	-env        Runtime environment
	-poll       Poll file
	-log-level  Log level
	-d          Database URL
	-t          Database type
	-secret     Secret key
	-maps-key   Google Maps API key

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	APP_ENV             → -env
	POLL_FILE           → -poll
	LOG_LEVEL           → -log-level
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	SECRET_KEY          → -secret
	GOOGLE_MAPS_API_KEY → -maps-key

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file into the environment first; variables that are already set win:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}

# Validation

ParseFlags returns an error for a non-numeric or out-of-range port, an
unknown env, database type, or log level. Nothing is required.
*/
package cliparse
