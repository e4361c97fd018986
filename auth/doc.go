// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the shared-password gate for technician logins.

# Credential Validation

All technicians share one system password, loaded from configuration
at startup:

	err := auth.ValidateCredentials(email, password, cfg.SystemPassword)

The password comparison is constant-time (hmac.Equal). Failures are the
sentinel errors ErrMissingEmail, ErrMissingPassword and
ErrInvalidPassword.

# Identity Resolution

Emails are the natural key for technicians:

	email := auth.NormalizeEmail(req.Email) // trim + lowercase
	name := auth.DisplayName(email)

A fixed set of known company emails maps to fixed display names; any
other email synthesizes a name from its local part. The numeric id for
a technician always comes from the persisted users row (the store
assigns it), never from a hash of the email, so ids stay stable across
restarts.
*/
package auth
