// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/studcouncil/council/ledger"
	"github.com/studcouncil/council/middleware"
	"github.com/studcouncil/council/models"
	"github.com/studcouncil/council/session"
)

type VotingHandler struct {
	store *session.Store
}

func NewVotingHandler(store *session.Store) *VotingHandler {
	return &VotingHandler{store: store}
}

// CastVote handles POST /api/polls/{id}/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be a number")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OptionIndex == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_index is required")
		return
	}

	choice, err := ledger.ParseChoice(req.Choice)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.store.Resolve(w, r)
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	view, err := sess.CastVote(pollID, *req.OptionIndex, choice)
	if err != nil {
		status, msg := voteErrorStatus(err)
		middleware.ErrorResponse(w, status, msg)
		return
	}

	slog.Debug("vote cast", "poll_id", pollID, "option", *req.OptionIndex, "choice", choice)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{Poll: view})
}

// VoteForm handles POST /polls/{id}/options/{index}/vote from the page's
// like/dislike buttons and sends the visitor back to the poll.
func (h *VotingHandler) VoteForm(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "poll id must be a number", http.StatusBadRequest)
		return
	}
	optionIndex, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "option index must be a number", http.StatusBadRequest)
		return
	}

	choice, err := ledger.ParseChoice(r.FormValue("choice"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := h.store.Resolve(w, r)
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	if _, err := sess.CastVote(pollID, optionIndex, choice); err != nil {
		status, msg := voteErrorStatus(err)
		http.Error(w, msg, status)
		return
	}

	http.Redirect(w, r, "/#poll-"+strconv.Itoa(pollID), http.StatusSeeOther)
}

// voteErrorStatus maps ledger errors to an HTTP status and message.
func voteErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ledger.ErrPollNotFound):
		return http.StatusNotFound, "Poll not found"
	case errors.Is(err, ledger.ErrOptionNotFound):
		return http.StatusNotFound, "Option not found"
	case errors.Is(err, ledger.ErrInvalidChoice):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ledger.ErrAlreadyVoted):
		return http.StatusConflict, "Already voted for this option"
	}
	slog.Error("unexpected vote error", "error", err)
	return http.StatusInternalServerError, "Failed to cast vote"
}
