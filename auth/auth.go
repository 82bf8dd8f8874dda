// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Admin key scopes
const (
	ScopeNews     = "news"
	ScopeFeedback = "feedback"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// NewRecordID returns a random UUID for a database row
func NewRecordID() string {
	return uuid.NewString()
}

// GenerateAdminKey creates an HMAC-based admin key for a scope
// This is deterministic and verifiable
func GenerateAdminKey(scope, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(scope))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the scope
func ValidateAdminKey(scope, adminKey, salt string) error {
	expected := GenerateAdminKey(scope, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateSessionToken creates a random secure token for a visitor session
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
