// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity resolves usernames to stable user ids.

Resolve is the single authorization gate for the CLI: every lifecycle
operation is scoped to the id it returns, never to a caller-supplied
id, and a failed resolve aborts the invocation before any mutation.

Ensure is the defensive companion used by registration: it creates the
account when the username is new (streak starts at 0) and is idempotent
on username. A duplicate email surfaces as ErrEmailTaken, a domain
error, not a crash.
*/
package identity
