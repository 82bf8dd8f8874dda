// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the poll voting state machine.

A Ledger owns a private copy of the seeded polls and remembers, per
(poll, option) pair, the visitor's current choice: NoVote, Like or Dislike.

# Reaction Mode

Each option has a like counter (Option.Votes) and a dislike counter.

	l := ledger.New(polls, ledger.Options{Mode: ledger.ModeReaction})
	l.CastVote(1, 0, ledger.Like)    // 45/5 → 46/5
	l.CastVote(1, 0, ledger.Like)    // no-op
	l.CastVote(1, 0, ledger.Dislike) // 46/5 → 45/6

Repeating the current choice is a no-op. Switching moves one unit from the
old counter to the new one. Poll.TotalVotes keeps its seed value, so the bar
fill percentage is computed against that frozen total.

# Counter Mode

Every CastVote adds one to the option and one to Poll.TotalVotes. Repeats
are allowed unless Options.Strict is set, in which case the second vote on
the same option returns ErrAlreadyVoted.

# Errors

	ErrPollNotFound   - unknown poll id
	ErrOptionNotFound - option index out of range
	ErrInvalidChoice  - choice the mode does not accept
	ErrAlreadyVoted   - strict counter mode repeat
*/
package ledger
