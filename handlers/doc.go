// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the council page and its
JSON API.

# Handler Types

Each handler is a struct holding its dependencies:

  - PageHandler: the HTML page, page feedback form
  - VotingHandler: votes from the page buttons and the API
  - PollHandler: poll views for the current visitor
  - SessionHandler: active navigation section and feedback tab
  - ContentHandler: events, achievements, contacts
  - NewsHandler: council news (database)
  - FeedbackHandler: feedback, initiatives, questions (database)

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(store)
	newsHandler := handlers.NewNewsHandler(db, cfg)

# Sessions

Poll state belongs to the visitor's session, resolved from the
council_session cookie or the X-Session-Token header. A request without
either starts a new session; the response carries both.

# Voting

	POST /polls/{id}/options/{index}/vote → VoteForm (303 back to the page)
	POST /api/polls/{id}/vote             → CastVote {option_index, choice}

Ledger errors map to status codes: unknown poll or option 404, a choice
the vote mode does not accept 400, a repeat vote under strict voting 409.

# Admin Operations

News mutations and the feedback listing require X-Admin-Key, an HMAC of
the scope ("news" or "feedback") under ADMIN_KEY_SALT. The router applies
the check; handlers assume it passed.
*/
package handlers
