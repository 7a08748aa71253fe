// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /manage", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
(status, duration_ms). The wrapper still supports hijacking, so it can sit in
front of the WebSocket endpoint.

NewLogger picks the output format for the process logger:

	slog.SetDefault(middleware.NewLogger(os.Stderr, cfg.LogLevel))

Text when stderr is a terminal, JSON otherwise.

# CORS Middleware

The read-only JSON API may be read from other origins:

	mux.Handle("GET /api/poll", middleware.CORS(handler))

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Form Helpers

Read fields from the POST body (query parameters are ignored):

	index, err := middleware.FormInt(r, "option_index")  // ErrMissingField, ErrNotInteger
	name, err := middleware.FormString(r, "option_name") // ErrMissingField
	loc := middleware.OptionalFormString(r, "option_location")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for IP hashing in the audit trail.
*/
package middleware
