// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /api/polls", middleware.WithLogging(handler))

Logs one line per request with method, path, status, client IP and
duration_ms.

# Admin Key Check

	mux.HandleFunc("POST /api/news",
		middleware.RequireAdminKey(auth.ScopeNews, cfg.AdminKeySalt, h.Create))

Missing X-Admin-Key yields 401, a wrong key 403.

# CORS Middleware

	server := http.Server{Handler: middleware.CORS(mux)}

Allows GET, POST, PUT, DELETE, OPTIONS with headers Content-Type,
X-Admin-Key and X-Session-Token.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP. Used for feedback IP hashing.
*/
package middleware
