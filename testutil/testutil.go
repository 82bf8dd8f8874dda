// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/studcouncil/council/auth"
	"github.com/studcouncil/council/cliparse"
	"github.com/studcouncil/council/db"
	"github.com/studcouncil/council/ledger"
	"github.com/studcouncil/council/seed"
	"github.com/studcouncil/council/session"
)

// TestAdminSalt is the admin key salt used by GetTestConfig
const TestAdminSalt = "test-admin-salt"

// SetupTestDB creates a fresh SQLite database with the full schema.
// The file lives in the test's temp dir and is removed with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "council.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: TestAdminSalt,
		VoteMode:     ledger.ModeReaction,
		SessionTTL:   2 * time.Hour,
		SessionSweep: 10 * time.Minute,
	}
}

// SeedData returns the embedded seed data or fails the test
func SeedData(t *testing.T) seed.Data {
	t.Helper()

	data, err := seed.Default()
	if err != nil {
		t.Fatalf("Failed to load seed data: %v", err)
	}
	return data
}

// NewTestStore creates a session store over the seed polls using cfg's vote settings
func NewTestStore(t *testing.T, cfg cliparse.Config) *session.Store {
	t.Helper()

	return session.NewStore(session.Config{
		Polls:       SeedData(t).Polls,
		Ledger:      ledger.Options{Mode: cfg.VoteMode, Strict: cfg.StrictVoting},
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
		Secure:      cfg.SecureCookies,
	})
}

// AdminHeaders returns the X-Admin-Key header for scope under the test salt
func AdminHeaders(scope string) map[string]string {
	return map[string]string{"X-Admin-Key": auth.GenerateAdminKey(scope, TestAdminSalt)}
}

// CreateTestNews inserts a news item and returns its ID
func CreateTestNews(t *testing.T, conn *sql.DB, title string, publishedAt time.Time) string {
	t.Helper()

	id := auth.NewRecordID()
	_, err := conn.Exec(`
		INSERT INTO news (id, title, content, author, published_at)
		VALUES ($1, $2, 'Test content', 'TestAuthor', $3)
	`, id, title, publishedAt)
	if err != nil {
		t.Fatalf("Failed to create test news: %v", err)
	}

	return id
}

// CreateTestFeedback inserts a feedback row of the given kind and returns its ID
func CreateTestFeedback(t *testing.T, conn *sql.DB, kind string, createdAt time.Time) string {
	t.Helper()

	id := auth.NewRecordID()
	_, err := conn.Exec(`
		INSERT INTO feedback (id, type, name, message, created_at)
		VALUES ($1, $2, 'TestUser', 'Test message', $3)
	`, id, kind, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test feedback: %v", err)
	}

	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// WithSession copies the session token from a previous response onto req
func WithSession(req *http.Request, prev *httptest.ResponseRecorder) *http.Request {
	if token := prev.Header().Get(session.TokenHeader); token != "" {
		req.Header.Set(session.TokenHeader, token)
	}
	return req
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
