// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the council page.

# Request Types

Types for parsing incoming JSON:

  - CastVoteRequest: option_index, choice ("like" or "dislike")
  - SelectTabRequest: tab, form
  - SubmitFeedbackRequest: type, name, email, title, message
  - NewsRequest: id, title, content, author

# Response Types

  - CastVoteResponse: poll (PollView)
  - SessionResponse: tab, form
  - SubmitFeedbackResponse: id, success
  - FeedbackListResponse, NewsListResponse
  - ErrorResponse: error, message

# Domain Types

  - Poll / Option: seeded poll state; Option.Votes is the like count
  - PollView / OptionView: a poll projected for one visitor with percentages
  - Event: calendar entry with a closed EventKind
  - Achievement, Contact: static page content
  - NewsItem, Feedback: rows of the news and feedback tables

# Event Kinds

EventKind is a closed enumeration. Each kind carries its presentation data:

	EventMeeting    → Users, pink/rose
	EventInitiative → Lightbulb, indigo/purple
	EventGeneral    → Calendar, emerald/teal

On the wire and in seed files kinds are written as "meeting", "initiative"
and "event".

# Constants

Feedback kinds:

	KindFeedback   = "feedback"
	KindInitiative = "initiative"
	KindQuestion   = "question"

Vote choices:

	ChoiceLike    = "like"
	ChoiceDislike = "dislike"
*/
package models
