// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/studcouncil/council/cliparse"
	"github.com/studcouncil/council/models"
	"github.com/studcouncil/council/page"
	"github.com/studcouncil/council/seed"
	"github.com/studcouncil/council/session"
)

// pageNewsLimit is how many news items the page shows.
const pageNewsLimit = 6

type PageHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	store    *session.Store
	data     seed.Data
	renderer *page.Renderer
}

func NewPageHandler(db *sql.DB, cfg cliparse.Config, store *session.Store, data seed.Data, renderer *page.Renderer) *PageHandler {
	return &PageHandler{db: db, cfg: cfg, store: store, data: data, renderer: renderer}
}

// Index handles GET /
// ?tab= selects the navigation section, ?form= the feedback form tab.
// A plain visit without a session renders the defaults without starting one.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tab, form := q.Get("tab"), q.Get("form")
	if tab == "" && form == "" {
		h.render(w, h.store.Peek(r), "")
		return
	}

	sess, err := h.store.Resolve(w, r)
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	if tab != "" {
		sess.SelectTab(tab)
	}
	if form != "" {
		sess.SelectForm(form)
	}

	h.render(w, sess, "")
}

// SubmitFeedbackForm handles POST /feedback from the page form.
// Input is acknowledged without validation and only stored when
// feedback recording is enabled.
func (h *PageHandler) SubmitFeedbackForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	sess, err := h.store.Resolve(w, r)
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	kind := r.PostFormValue("type")
	if kind != "" {
		sess.SelectForm(kind)
	}

	if h.cfg.RecordFeedback {
		h.record(r, kind)
	}

	h.render(w, sess, page.Confirmation(kind))
}

func (h *PageHandler) record(r *http.Request, kind string) {
	if !models.IsFeedbackKind(kind) {
		slog.Warn("not recording feedback of unknown type", "type", kind)
		return
	}

	fb := feedbackFromRequest(models.SubmitFeedbackRequest{
		Type:    kind,
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Title:   r.PostFormValue("title"),
		Message: r.PostFormValue("message"),
	}, r, h.cfg.AdminKeySalt)

	if err := insertFeedback(h.db, fb); err != nil {
		slog.Error("failed to record page feedback", "error", err)
		return
	}
	slog.Info("page feedback recorded", "id", fb.ID, "type", fb.Kind)
}

func (h *PageHandler) render(w http.ResponseWriter, sess *session.Session, confirmation string) {
	news, err := listNews(h.db, pageNewsLimit)
	if err != nil {
		// The page still works without news.
		slog.Warn("failed to load news for page", "error", err)
		news = nil
	}

	tab, form := sess.Tabs()
	data := page.Data{
		Tab:          tab,
		Form:         form,
		Mode:         string(sess.Mode()),
		Polls:        sess.Polls(),
		Events:       h.data.Events,
		Achievements: h.data.Achievements,
		Contacts:     h.data.Contacts,
		News:         news,
		Confirmation: confirmation,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, data); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
