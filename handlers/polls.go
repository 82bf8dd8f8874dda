// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/studcouncil/council/middleware"
	"github.com/studcouncil/council/models"
	"github.com/studcouncil/council/session"
)

type PollHandler struct {
	store *session.Store
}

func NewPollHandler(store *session.Store) *PollHandler {
	return &PollHandler{store: store}
}

// ListPolls handles GET /api/polls
// Read-only: a visitor without a session sees the seed counts and gets no
// session.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Peek(r)
	middleware.JSONResponse(w, http.StatusOK, models.PollListResponse{Polls: sess.Polls()})
}

// GetPoll handles GET /api/polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be a number")
		return
	}

	view, err := h.store.Peek(r).Poll(pollID)
	if err != nil {
		status, msg := voteErrorStatus(err)
		middleware.ErrorResponse(w, status, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}
