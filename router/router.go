// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/studcouncil/council/auth"
	"github.com/studcouncil/council/cliparse"
	"github.com/studcouncil/council/handlers"
	"github.com/studcouncil/council/middleware"
	"github.com/studcouncil/council/page"
	"github.com/studcouncil/council/seed"
	"github.com/studcouncil/council/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, store *session.Store, data seed.Data, renderer *page.Renderer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(db, cfg, store, data, renderer)
	votingHandler := handlers.NewVotingHandler(store)
	pollHandler := handlers.NewPollHandler(store)
	sessionHandler := handlers.NewSessionHandler(store)
	contentHandler := handlers.NewContentHandler(data)
	newsHandler := handlers.NewNewsHandler(db, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg)

	newsAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAdminKey(auth.ScopeNews, cfg.AdminKeySalt, next)
	}
	feedbackAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAdminKey(auth.ScopeFeedback, cfg.AdminKeySalt, next)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Page
	mux.Handle("GET /static/", page.Static())
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("POST /feedback", middleware.WithLogging(pageHandler.SubmitFeedbackForm))
	mux.HandleFunc("POST /polls/{id}/options/{index}/vote", middleware.WithLogging(votingHandler.VoteForm))

	// Polls (per-visitor session)
	mux.HandleFunc("GET /api/polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /api/polls/{id}/vote", middleware.WithLogging(votingHandler.CastVote))

	// Session tabs
	mux.HandleFunc("GET /api/session", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /api/session/tab", middleware.WithLogging(sessionHandler.SelectTab))

	// Seed content
	mux.HandleFunc("GET /api/events", middleware.WithLogging(contentHandler.ListEvents))
	mux.HandleFunc("GET /api/achievements", middleware.WithLogging(contentHandler.ListAchievements))
	mux.HandleFunc("GET /api/contacts", middleware.WithLogging(contentHandler.ListContacts))

	// News
	mux.HandleFunc("GET /api/news", middleware.WithLogging(newsHandler.ListNews))
	mux.HandleFunc("POST /api/news", middleware.WithLogging(newsAdmin(newsHandler.CreateNews)))
	mux.HandleFunc("PUT /api/news", middleware.WithLogging(newsAdmin(newsHandler.UpdateNews)))
	mux.HandleFunc("DELETE /api/news", middleware.WithLogging(newsAdmin(newsHandler.DeleteNews)))

	// Feedback
	mux.HandleFunc("POST /api/feedback", middleware.WithLogging(feedbackHandler.SubmitFeedback))
	mux.HandleFunc("GET /api/feedback", middleware.WithLogging(feedbackAdmin(feedbackHandler.ListFeedback)))

	return mux
}
