package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/ADH-17/DBMSFINALPROJECT/cli"
	"github.com/ADH-17/DBMSFINALPROJECT/cliparse"
	"github.com/ADH-17/DBMSFINALPROJECT/db"
)

func main() {
	// Load .env first; a missing file is fine, env vars still apply
	_ = godotenv.Load()

	// Parse configuration
	cfg, rest, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	// One invocation = one transaction: a single logical operation,
	// then a single commit. Any failure rolls the whole thing back.
	tx, err := dbConn.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		os.Exit(1)
	}

	if err := cli.Run(tx, cfg, os.Stdout, rest); err != nil {
		tx.Rollback()
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("commit failed", "error", err)
		os.Exit(1)
	}
}
