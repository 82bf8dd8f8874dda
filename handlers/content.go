// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/studcouncil/council/middleware"
	"github.com/studcouncil/council/seed"
)

// ContentHandler serves the read-only seed content.
type ContentHandler struct {
	data seed.Data
}

func NewContentHandler(data seed.Data) *ContentHandler {
	return &ContentHandler{data: data}
}

// ListEvents handles GET /api/events
func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.data.Events)
}

// ListAchievements handles GET /api/achievements
func (h *ContentHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.data.Achievements)
}

// ListContacts handles GET /api/contacts
func (h *ContentHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.data.Contacts)
}
