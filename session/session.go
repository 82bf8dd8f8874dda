// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"
	"time"

	"github.com/studcouncil/council/ledger"
	"github.com/studcouncil/council/models"
	"github.com/studcouncil/council/tabs"
)

// Session is one visitor's page state. All methods are safe for concurrent
// use; actions of one visitor are applied one at a time.
type Session struct {
	Token string

	mu       sync.Mutex
	ledger   *ledger.Ledger
	nav      *tabs.Selector
	form     *tabs.Selector
	lastSeen time.Time
}

func newSession(token string, polls []models.Poll, opts ledger.Options, now time.Time) *Session {
	return &Session{
		Token:    token,
		ledger:   ledger.New(polls, opts),
		nav:      tabs.NewNavigation(),
		form:     tabs.NewFeedbackForm(),
		lastSeen: now,
	}
}

// CastVote applies a vote and returns the updated poll view.
func (s *Session) CastVote(pollID, optionIndex int, choice ledger.Choice) (models.PollView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ledger.CastVote(pollID, optionIndex, choice); err != nil {
		return models.PollView{}, err
	}
	return s.ledger.View(pollID)
}

func (s *Session) Mode() ledger.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Mode()
}

func (s *Session) Polls() []models.PollView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Views()
}

func (s *Session) Poll(pollID int) (models.PollView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.View(pollID)
}

func (s *Session) SelectTab(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Select(v)
}

func (s *Session) SelectForm(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Select(v)
}

// Tabs returns the active navigation section and feedback form tab.
func (s *Session) Tabs() (tab, form string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Active(), s.form.Active()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
