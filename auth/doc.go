// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys, session tokens and record IDs.

# Admin Keys

Admin keys use HMAC-SHA256 over a scope name:

	adminKey := auth.GenerateAdminKey(auth.ScopeNews, salt)
	err := auth.ValidateAdminKey(auth.ScopeNews, adminKey, salt)

The key is URL-safe base64 encoded without padding. The same scope and salt
always produce the same key, so nothing is stored. Print the keys for a salt
with the -print-admin-keys flag.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

They identify a visitor's in-memory session; they are not credentials.

# Record IDs

	id := auth.NewRecordID() // UUID v4 for news and feedback rows

# IP Hashing

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
