// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv);
real environment variables take precedence over it, and CLI flags take
precedence over both.

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Postgres connection string or sqlite file path
  - DatabaseType: "sqlite" (default) or "postgres"
  - SystemPassword: Shared technician password (required)
  - SeedDemoData: Load demo fixtures on startup

# CLI Flags

	-p               Server port
	-d               Database URL / sqlite path
	-t               Database type
	-seed            Load demo data
	--system-password Shared password (prefer env)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SYSTEM_PASSWORD → --system-password

# Validation

ParseFlags returns an error if required values are missing:

  - SYSTEM_PASSWORD must be provided
  - DATABASE_URL must be provided for postgres
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
