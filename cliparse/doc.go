// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A dotenv file (default .env, see -env-file) is loaded first; it never
overrides variables already present in the environment.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string or SQLite path (default: council.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - VoteMode: reaction or counter (default: reaction)
  - StrictVoting: reject repeat votes in counter mode
  - RecordFeedback: store page form submissions
  - SeedFile: YAML seed file (default: built-in data)
  - SessionTTL / SessionSweep: session idle limit and sweep interval
  - MaxSessions: sessions kept in memory (default: 10000)
  - SecureCookies: mark the session cookie HTTPS only

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ADMIN_KEY_SALT  → --admin-salt
	VOTE_MODE       → --vote-mode
	STRICT_VOTING   → --strict-voting
	RECORD_FEEDBACK → --record-feedback
	SEED_FILE       → --seed
	SESSION_TTL     → --session-ttl
	SESSION_SWEEP   → --session-sweep
	MAX_SESSIONS    → --max-sessions
	SECURE_COOKIES  → --secure-cookies

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY_SALT is missing
  - DATABASE_URL is missing while DATABASE_TYPE is postgres
  - DATABASE_TYPE, VOTE_MODE, a boolean or a duration does not parse
*/
package cliparse
