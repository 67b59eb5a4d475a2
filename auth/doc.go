// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides authentication and token generation utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(auth.AdminSubject, salt)
	err := auth.ValidateAdminKey(auth.AdminSubject, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same subject and salt always produce the same key. This allows validation
without storing the key in the database. Catalog changes (adding movies,
marking them watched) require it.

# Voter Tokens

Voter tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateVoterToken()

Tokens are URL-safe base64 encoded and identify a voter when submitting
preferences and RSVPs. Each voter gets a unique token when claiming a
username.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
