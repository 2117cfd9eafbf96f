// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles global flag parsing and configuration.

# Configuration

ParseFlags returns the Config plus the remaining command words:

	cfg, rest, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - User: acting username (required, --user)
  - DatabaseURL: PostgreSQL connection string
  - JWTSecret: signing secret for issued login tokens
  - Limit: default result-size limit for ranked reports (10)

# CLI Flags

	--user        Acting username (required)
	-d            Database URL
	--jwt-secret  Token signing secret

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL → -d
	JWT_SECRET   → --jwt-secret

If DATABASE_URL is absent the URL is assembled from the discrete
deployment variables DB_HOST, DB_PORT, DB_NAME, DB_USER and
DB_PASSWORD; of those only DB_PASSWORD has no default and missing it
is a configuration error before any store contact.

CLI flags take precedence over environment variables. A .env file is
loaded by main via godotenv before parsing.

# Validation

  - --user must be provided
  - a database URL must be resolvable one way or another
  - JWT_SECRET is checked lazily, only by commands that issue tokens
*/
package cliparse
