// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the council page and its JSON API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, store, data, renderer)

# Endpoints

Health:

	GET /health

Page:

	GET  /                                 - Page (?tab=, ?form=)
	GET  /static/                          - Stylesheet
	POST /feedback                         - Page feedback form
	POST /polls/{id}/options/{index}/vote  - Like/dislike button

Polls and session (per visitor):

	GET  /api/polls           - Poll views
	GET  /api/polls/{id}      - One poll view
	POST /api/polls/{id}/vote - Cast a vote
	GET  /api/session         - Active tabs
	POST /api/session/tab     - Select tab or feedback form

Content:

	GET /api/events
	GET /api/achievements
	GET /api/contacts

News (mutations require X-Admin-Key for scope "news"):

	GET    /api/news
	POST   /api/news
	PUT    /api/news
	DELETE /api/news?id=

Feedback (listing requires X-Admin-Key for scope "feedback"):

	POST /api/feedback
	GET  /api/feedback?type=
*/
package router
