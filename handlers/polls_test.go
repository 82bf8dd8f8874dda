// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studcouncil/council/ledger"
	"github.com/studcouncil/council/models"
	"github.com/studcouncil/council/testutil"
)

func TestListPolls(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(testutil.NewTestStore(t, cfg))

	req := testutil.MakeRequest("GET", "/api/polls", nil, nil)
	w := httptest.NewRecorder()

	handler.ListPolls(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PollListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Polls) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(resp.Polls))
	}

	first := resp.Polls[0]
	if first.ID != 1 || first.TotalVotes != 156 || len(first.Options) != 4 {
		t.Errorf("Unexpected first poll: %+v", first)
	}
	if first.Mode != string(ledger.ModeReaction) {
		t.Errorf("Expected mode reaction, got %s", first.Mode)
	}
	// 45 likes of 50 reactions
	if first.Options[0].LikesPercentage != 90 {
		t.Errorf("Expected likes_percentage 90, got %f", first.Options[0].LikesPercentage)
	}
}

func TestGetPoll(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(testutil.NewTestStore(t, cfg))

	tests := []struct {
		name           string
		pollID         string
		expectedStatus int
	}{
		{"existing poll", "2", http.StatusOK},
		{"unknown poll", "3", http.StatusNotFound},
		{"non-numeric id", "two", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/polls/"+tt.pollID, nil, nil)
			req.SetPathValue("id", tt.pollID)
			w := httptest.NewRecorder()

			handler.GetPoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var view models.PollView
				testutil.AssertJSON(t, w, &view)
				if view.Question != "Улучшение условий в столовой" {
					t.Errorf("Unexpected question %q", view.Question)
				}
			}
		})
	}
}

func TestPollsFollowSession(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := testutil.NewTestStore(t, cfg)
	polls := NewPollHandler(store)
	voting := NewVotingHandler(store)

	req := testutil.MakeRequest("POST", "/api/polls/1/vote", models.CastVoteRequest{OptionIndex: intPtr(0), Choice: "dislike"}, nil)
	req.SetPathValue("id", "1")
	voteW := httptest.NewRecorder()
	voting.CastVote(voteW, req)
	testutil.AssertStatus(t, voteW, http.StatusOK)

	// Same visitor sees the dislike
	req = testutil.WithSession(testutil.MakeRequest("GET", "/api/polls/1", nil, nil), voteW)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	polls.GetPoll(w, req)

	var view models.PollView
	testutil.AssertJSON(t, w, &view)
	if view.Options[0].Dislikes != 6 || view.Options[0].Choice != "dislike" {
		t.Errorf("Expected own dislike to be visible, got %+v", view.Options[0])
	}

	// A new visitor sees the seed counts
	req = testutil.MakeRequest("GET", "/api/polls/1", nil, nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	polls.GetPoll(w, req)

	// Decode into a new value; reusing view would keep the old Choice,
	// which a fresh visitor's response omits.
	var fresh models.PollView
	testutil.AssertJSON(t, w, &fresh)
	if fresh.Options[0].Dislikes != 5 || fresh.Options[0].Choice != "" {
		t.Errorf("Expected fresh seed counts, got %+v", fresh.Options[0])
	}
}

func TestReadOnlyRequestsDoNotStartSessions(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := testutil.NewTestStore(t, cfg)
	polls := NewPollHandler(store)
	sessions := NewSessionHandler(store)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		polls.ListPolls(w, testutil.MakeRequest("GET", "/api/polls", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		req := testutil.MakeRequest("GET", "/api/polls/1", nil, nil)
		req.SetPathValue("id", "1")
		w = httptest.NewRecorder()
		polls.GetPoll(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("Set-Cookie") != "" {
			t.Error("GET /api/polls/1 should not set a session cookie")
		}

		w = httptest.NewRecorder()
		sessions.GetSession(w, testutil.MakeRequest("GET", "/api/session", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	if store.Len() != 0 {
		t.Errorf("Expected no sessions after read-only requests, got %d", store.Len())
	}
}
