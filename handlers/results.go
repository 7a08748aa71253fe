// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/simple-poll/middleware"
	"github.com/danielhkuo/simple-poll/models"
	"github.com/danielhkuo/simple-poll/store"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

type ResultsHandler struct {
	store *store.Store
	audit Recorder
}

// NewResultsHandler wires the read-only JSON API. audit may be nil.
func NewResultsHandler(st *store.Store, audit Recorder) *ResultsHandler {
	return &ResultsHandler{store: st, audit: audit}
}

// GetPoll handles GET /api/poll
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll := h.store.Snapshot()
	total := poll.TotalVotes()

	options := make([]models.OptionResult, len(poll.Options))
	for i, opt := range poll.Options {
		options[i] = models.OptionResult{
			Index:    i,
			Name:     opt.Name,
			Location: opt.Location,
			Votes:    opt.Votes,
			Percent:  math.Round(poll.Percent(i)*10) / 10,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Question:   poll.Question,
		Options:    options,
		TotalVotes: total,
		VotesLabel: humanize.Comma(int64(total)),
	})
}

// ListEvents handles GET /api/events?limit=N
func (h *ResultsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if h.audit == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Audit trail is disabled")
		return
	}

	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxEventLimit)
	}

	events, err := h.audit.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to query audit events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventsResponse{Events: events})
}
