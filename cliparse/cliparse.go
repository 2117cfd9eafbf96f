package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

type Config struct {
	User        string
	DatabaseURL string
	JWTSecret   string

	// Limit is the default result-size limit for ranked reports.
	Limit int
}

// ParseFlags validates global flags and returns the remaining
// command words (e.g. ["post", "create", "--description", ...]).
func ParseFlags(args []string) (Config, []string, error) {
	var cfg Config

	fs := flag.NewFlagSet("social", flag.ContinueOnError)

	fs.StringVar(&cfg.User, "user", "", "Username of the acting user (required)")

	// Connection config (can be CLI args or env)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Token signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if cfg.User == "" {
		return Config{}, nil, errors.New("acting username required (use --user)")
	}

	// Fall back to environment variables
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		url, err := urlFromParts()
		if err != nil {
			return Config{}, nil, err
		}
		cfg.DatabaseURL = url
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	// JWTSecret is only required by token-issuing commands; the
	// dispatcher checks for it there.

	cfg.Limit = 10

	return cfg, fs.Args(), nil
}

// urlFromParts assembles a connection URL from the discrete DB_* env
// variables the deployment uses. DB_PASSWORD is the one setting with
// no usable default.
func urlFromParts() (string, error) {
	host := getenvDefault("DB_HOST", "localhost")
	port := getenvDefault("DB_PORT", "5432")
	name := os.Getenv("DB_NAME")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")

	if name == "" || user == "" {
		return "", errors.New("database URL required (use -d, DATABASE_URL, or DB_NAME/DB_USER env)")
	}
	if password == "" {
		return "", errors.New("DB_PASSWORD is not set. Check your .env file")
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, name), nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
