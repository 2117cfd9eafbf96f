// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cli dispatches command words to the core packages and renders
their results as line-oriented output.

# Dispatch

Run receives the already-parsed configuration plus the remaining
command words and routes them:

	err := cli.Run(tx, cfg, os.Stdout, rest)

The acting username is resolved before any command runs (except
`user register`, which goes through identity.Ensure instead). A failed
resolve aborts before any mutation.

# Outcomes vs Errors

Precondition failures on publish/delete/like print a single
undifferentiated rejection line and return nil - scripting against
those outcomes must not see a non-zero exit. Configuration, connection,
identity and uniqueness failures return errors; main reports them and
exits non-zero.

# Rendering

Formatting here is presentation only. The contracts that matter -
ordering, rank values, snippet truncation, the 0.00 zero-default -
live in the drafts and rankings packages.
*/
package cli
