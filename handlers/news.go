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

type NewsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewNewsHandler(db *sql.DB, cfg cliparse.Config) *NewsHandler {
	return &NewsHandler{db: db, cfg: cfg}
}

// ListNews handles GET /api/news
func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := listNews(h.db, 0)
	if err != nil {
		slog.Error("failed to list news", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NewsListResponse{News: items})
}

// CreateNews handles POST /api/news (admin key required)
func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req models.NewsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.Content == "" || req.Author == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title, content and author are required")
		return
	}

	item := models.NewsItem{
		ID:          auth.NewRecordID(),
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		PublishedAt: time.Now(),
	}

	_, err := h.db.Exec(`
		INSERT INTO news (id, title, content, author, published_at)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, item.Title, item.Content, item.Author, item.PublishedAt)
	if err != nil {
		slog.Error("failed to insert news", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("news published", "id", item.ID, "author", item.Author)

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// UpdateNews handles PUT /api/news (admin key required)
func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	var req models.NewsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" || req.Title == "" || req.Content == "" || req.Author == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id, title, content and author are required")
		return
	}

	res, err := h.db.Exec(`
		UPDATE news SET title = $1, content = $2, author = $3
		WHERE id = $4
	`, req.Title, req.Content, req.Author, req.ID)
	if err != nil {
		slog.Error("failed to update news", "error", err, "id", req.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	n, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "News not found")
		return
	}

	item, err := getNews(h.db, req.ID)
	if err != nil {
		slog.Error("failed to reload news", "error", err, "id", req.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}

// DeleteNews handles DELETE /api/news?id= (admin key required)
// Deleting an id that does not exist still succeeds.
func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	if _, err := h.db.Exec(`DELETE FROM news WHERE id = $1`, id); err != nil {
		slog.Error("failed to delete news", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("news deleted", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// listNews returns news newest first; limit <= 0 means all.
func listNews(db *sql.DB, limit int) ([]models.NewsItem, error) {
	query := `
		SELECT id, title, content, author, published_at
		FROM news
		ORDER BY published_at DESC, id DESC
	`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying news: %w", err)
	}
	defer rows.Close()

	items := []models.NewsItem{}
	for rows.Next() {
		var item models.NewsItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.Author, &item.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning news: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating news: %w", err)
	}
	return items, nil
}

func getNews(db *sql.DB, id string) (models.NewsItem, error) {
	var item models.NewsItem
	err := db.QueryRow(`
		SELECT id, title, content, author, published_at
		FROM news WHERE id = $1
	`, id).Scan(&item.ID, &item.Title, &item.Content, &item.Author, &item.PublishedAt)
	if err != nil {
		return models.NewsItem{}, fmt.Errorf("loading news %s: %w", id, err)
	}
	return item, nil
}
