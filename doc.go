// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the student council page server.

The server renders the council ("Совет Обучающихся") page: polls with
like/dislike voting, the event calendar, news, achievements, a feedback form
and contacts. Poll state lives in per-visitor sessions and resets when a
session expires or the server restarts.

# Starting the Server

The server reads CLI flags, then environment variables, then a .env file:

	ADMIN_KEY_SALT=secret go run .

Or with flags:

	go run . -p 3318 -d council.db -admin-salt secret

Print the admin keys for news and feedback and exit:

	go run . -admin-salt secret -print-admin-keys

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite file (default: council.db)
  - VOTE_MODE (-vote-mode): reaction or counter (default: reaction)
  - STRICT_VOTING (-strict-voting): one vote per option in counter mode
  - RECORD_FEEDBACK (-record-feedback): store page form submissions
  - SEED_FILE (-seed): YAML file replacing the built-in polls and content
  - SESSION_TTL (-session-ttl): idle session lifetime (default: 2h)
  - SESSION_SWEEP (-session-sweep): sweep interval (default: 10m)
  - MAX_SESSIONS (-max-sessions): sessions kept in memory (default: 10000)
  - SECURE_COOKIES (-secure-cookies): HTTPS-only session cookie

# Architecture

  - ledger: vote state machine (reaction and counter variants)
  - tabs: navigation and feedback tab selection
  - session: per-visitor ledger and tabs, cron-swept
  - seed: built-in polls, events, achievements, contacts
  - page: HTML templates
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin keys, JSON helpers
  - models: Request/response and domain types
  - auth: Admin keys, session tokens, record IDs
  - db: Schema creation and driver selection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
