// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/studcouncil/council/auth"
	"github.com/studcouncil/council/ledger"
	"github.com/studcouncil/council/models"
)

const (
	CookieName  = "council_session"
	TokenHeader = "X-Session-Token"
)

type Config struct {
	Polls  []models.Poll
	Ledger ledger.Options
	TTL    time.Duration
	// MaxSessions bounds the store; 0 means unbounded. When full, Create
	// evicts the session idle the longest.
	MaxSessions int
	// Secure marks the session cookie as HTTPS only.
	Secure bool
}

// Store keeps sessions in memory. Nothing survives a restart.
type Store struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session

	cron *cron.Cron
}

func NewStore(cfg Config) *Store {
	return &Store{
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the session named by the request's cookie or header,
// creating one (and setting the cookie) when there is none.
func (s *Store) Resolve(w http.ResponseWriter, r *http.Request) (*Session, error) {
	token := tokenFrom(r)

	if sess := s.Get(token); sess != nil {
		return sess, nil
	}

	sess, err := s.Create()
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(TokenHeader, sess.Token)

	return sess, nil
}

// Peek returns the request's live session. Without one it returns a
// detached session seeded like a new one, which is neither stored nor sent
// to the client, so read-only requests never grow the store.
func (s *Store) Peek(r *http.Request) *Session {
	if sess := s.Get(tokenFrom(r)); sess != nil {
		return sess
	}
	return newSession("", s.cfg.Polls, s.cfg.Ledger, s.now())
}

func tokenFrom(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

// Get returns a live session and marks it as seen, or nil.
func (s *Store) Get(token string) *Session {
	if token == "" {
		return nil
	}

	s.mu.Lock()
	sess, ok := s.sessions[token]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	sess.touch(s.now())
	return sess
}

// Create starts a fresh session seeded with the configured polls.
func (s *Store) Create() (*Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	sess := newSession(token, s.cfg.Polls, s.cfg.Ledger, s.now())

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.evictOldestLocked()
	}
	s.sessions[token] = sess
	s.mu.Unlock()

	slog.Debug("session created", "sessions", s.Len())
	return sess, nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.cfg.TTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// evictOldestLocked drops the session idle the longest. s.mu must be held.
func (s *Store) evictOldestLocked() {
	var oldest string
	var oldestSeen time.Time
	for token, sess := range s.sessions {
		seen := sess.idleSince()
		if oldest == "" || seen.Before(oldestSeen) {
			oldest, oldestSeen = token, seen
		}
	}
	if oldest != "" {
		delete(s.sessions, oldest)
		slog.Warn("session store full, evicted oldest", "max", s.cfg.MaxSessions)
	}
}

// StartSweeper runs Sweep on a cron schedule until StopSweeper is called.
func (s *Store) StartSweeper(every time.Duration) error {
	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %s", every), func() {
		if n := s.Sweep(); n > 0 {
			slog.Info("idle sessions swept", "removed", n, "remaining", s.Len())
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling session sweep: %w", err)
	}

	s.cron = c
	c.Start()
	slog.Info("session sweeper started", "every", every.String(), "ttl", s.cfg.TTL.String())
	return nil
}

// StopSweeper stops the cron scheduler and waits for a running sweep.
func (s *Store) StopSweeper() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}
