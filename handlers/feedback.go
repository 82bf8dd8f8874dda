// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/studcouncil/council/auth"
	"github.com/studcouncil/council/cliparse"
	"github.com/studcouncil/council/middleware"
	"github.com/studcouncil/council/models"
)

type FeedbackHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewFeedbackHandler(db *sql.DB, cfg cliparse.Config) *FeedbackHandler {
	return &FeedbackHandler{db: db, cfg: cfg}
}

// SubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Type == "" || req.Name == "" || req.Message == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "type, name and message are required")
		return
	}
	if !models.IsFeedbackKind(req.Type) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "type must be feedback, initiative or question")
		return
	}

	fb := feedbackFromRequest(req, r, h.cfg.AdminKeySalt)
	if err := insertFeedback(h.db, fb); err != nil {
		slog.Error("failed to insert feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("feedback received", "id", fb.ID, "type", fb.Kind)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitFeedbackResponse{
		ID:      fb.ID,
		Success: true,
	})
}

// ListFeedback handles GET /api/feedback (admin key required)
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")

	query := `
		SELECT id, type, name, email, title, message, created_at
		FROM feedback
	`
	var args []any
	if kind != "" {
		query += ` WHERE type = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	items := []models.Feedback{}
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.Kind, &fb.Name, &fb.Email, &fb.Title, &fb.Message, &fb.CreatedAt); err != nil {
			slog.Error("failed to scan feedback", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		items = append(items, fb)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FeedbackListResponse{Feedback: items})
}

func feedbackFromRequest(req models.SubmitFeedbackRequest, r *http.Request, salt string) models.Feedback {
	fb := models.Feedback{
		ID:        auth.NewRecordID(),
		Kind:      req.Type,
		Name:      req.Name,
		Email:     req.Email,
		Title:     req.Title,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if ip := middleware.GetClientIP(r); ip != "" {
		hash := auth.HashIP(ip, salt)
		fb.IPHash = &hash
	}
	return fb
}

func insertFeedback(db *sql.DB, fb models.Feedback) error {
	_, err := db.Exec(`
		INSERT INTO feedback (id, type, name, email, title, message, ip_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, fb.ID, fb.Kind, fb.Name, fb.Email, fb.Title, fb.Message, fb.IPHash, fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting feedback %s: %w", fb.ID, err)
	}
	return nil
}
