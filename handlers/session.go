// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/studcouncil/council/middleware"
	"github.com/studcouncil/council/models"
	"github.com/studcouncil/council/session"
)

type SessionHandler struct {
	store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	tab, form := h.store.Peek(r).Tabs()
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{Tab: tab, Form: form})
}

// SelectTab handles POST /api/session/tab
// Values are stored as given; an unknown tab simply matches no section.
func (h *SessionHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	var req models.SelectTabRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Tab == "" && req.Form == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tab or form is required")
		return
	}

	sess, err := h.store.Resolve(w, r)
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	if req.Tab != "" {
		sess.SelectTab(req.Tab)
	}
	if req.Form != "" {
		sess.SelectForm(req.Form)
	}

	tab, form := sess.Tabs()
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{Tab: tab, Form: form})
}
