// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and login token issuance.

# Passwords

HashPassword / CheckPassword wrap bcrypt at default cost:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(password, storedHash)

CheckPassword returns ErrInvalidCredentials on mismatch so callers can
report a single undifferentiated "invalid credentials" outcome.

# Tokens

Token issues an HS256 JWT compatible with the companion API's sessions:

	tok, err := auth.Token(userID, username, cfg.JWTSecret)

Claims: user_id, username, iat, exp (7 days), jti (random UUID).
ParseToken validates a token and returns the claims; it rejects any
non-HMAC signing method.
*/
package auth
