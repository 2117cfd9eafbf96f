// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/ADH-17/DBMSFINALPROJECT/auth"
	"github.com/ADH-17/DBMSFINALPROJECT/identity"
)

func parseCredentials(args []string, name string) (email, password string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	emailFlag := fs.String("email", "", "Account email")
	passwordFlag := fs.String("password", "", "Account password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if *emailFlag == "" || *passwordFlag == "" {
		return "", "", errors.New("--email and --password are required")
	}
	return *emailFlag, *passwordFlag, nil
}

// register creates the acting user's account when missing. Idempotent
// on username; a duplicate email is reported and nothing is inserted.
func (a *App) register(args []string) error {
	email, password, err := parseCredentials(args, "user register")
	if err != nil {
		return err
	}
	if a.cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET required (use --jwt-secret or JWT_SECRET env)")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	userID, err := identity.Ensure(a.s, a.cfg.User, email, hash)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return fmt.Errorf("email %s already in use: %w", email, err)
		}
		return err
	}
	slog.Info("user registered", "username", a.cfg.User, "user_id", userID)

	token, err := auth.Token(userID, a.cfg.User, a.cfg.JWTSecret)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered user '%s' (ID: %d).\n", a.cfg.User, userID)
	fmt.Fprintf(a.out, "Token: %s\n", token)
	return nil
}

// login checks an email/password pair and prints a session token for
// the companion API. Unknown email and wrong password are reported
// identically.
func (a *App) login(args []string) error {
	email, password, err := parseCredentials(args, "user login")
	if err != nil {
		return err
	}
	if a.cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET required (use --jwt-secret or JWT_SECRET env)")
	}

	userID, username, hash, err := identity.Lookup(a.s, email)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return auth.ErrInvalidCredentials
		}
		return err
	}

	if err := auth.CheckPassword(password, hash); err != nil {
		return err
	}
	slog.Info("user logged in", "username", username, "user_id", userID)

	token, err := auth.Token(userID, username, a.cfg.JWTSecret)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Token: %s\n", token)
	return nil
}
