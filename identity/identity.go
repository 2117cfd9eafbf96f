// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ADH-17/DBMSFINALPROJECT/db"
)

var (
	// ErrNotFound means the username resolves to no account. Every
	// operation gated on the acting user must abort before mutating
	// anything when it sees this.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken means a defensive create collided with an existing
	// account's unique email.
	ErrEmailTaken = errors.New("email already in use")
)

// uniqueViolation is the Postgres error code for a unique-constraint hit.
const uniqueViolation = "23505"

// Resolve maps a username to its stable user id. No side effects.
func Resolve(s db.Session, username string) (int, error) {
	var userID int
	err := s.QueryRow(`
		SELECT user_id FROM users WHERE username = $1
	`, username).Scan(&userID)

	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user %q: %w", username, err)
	}
	return userID, nil
}

// Ensure resolves a username, creating the account when missing.
// Idempotent on username; a duplicate email on create surfaces as
// ErrEmailTaken and nothing is inserted.
func Ensure(s db.Session, username, email, passwordHash string) (int, error) {
	userID, err := Resolve(s, username)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return 0, err
	}

	err = s.QueryRow(`
		INSERT INTO users (username, email, password_hash, streak)
		VALUES ($1, $2, $3, 0)
		RETURNING user_id
	`, username, email, passwordHash).Scan(&userID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return userID, nil
}

// Lookup fetches the account behind an email for credential checks.
// Returns ErrNotFound when no account uses the email.
func Lookup(s db.Session, email string) (userID int, username, passwordHash string, err error) {
	err = s.QueryRow(`
		SELECT user_id, username, password_hash FROM users WHERE email = $1
	`, email).Scan(&userID, &username, &passwordHash)

	if err == sql.ErrNoRows {
		return 0, "", "", ErrNotFound
	}
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to look up account: %w", err)
	}
	return userID, username, passwordHash, nil
}
