// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps per-visitor page state in memory.

A Session owns one Vote Ledger and two tab selectors (navigation section and
feedback form tab). Sessions are found by the council_session cookie or the
X-Session-Token header:

	sess, err := store.Resolve(w, r)
	view, err := sess.CastVote(1, 0, ledger.Like)

Unknown or missing tokens get a new session seeded from the configured
polls. Nothing is persisted.

# Expiry

	store.StartSweeper(10 * time.Minute)
	defer store.StopSweeper()

A robfig/cron job removes sessions idle for longer than Config.TTL.
*/
package session
