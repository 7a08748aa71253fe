// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/simple-poll/cliparse"
	"github.com/danielhkuo/simple-poll/handlers"
	"github.com/danielhkuo/simple-poll/live"
	"github.com/danielhkuo/simple-poll/middleware"
	"github.com/danielhkuo/simple-poll/render"
	"github.com/danielhkuo/simple-poll/store"
)

// NewRouter registers every route. audit may be nil to disable the audit trail;
// a nil hub gets a fresh one.
func NewRouter(st *store.Store, renderer *render.Renderer, hub *live.Hub, audit handlers.Recorder, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	if hub == nil {
		hub = live.NewHub()
	}

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st, renderer, audit, hub, cfg)
	resultsHandler := handlers.NewResultsHandler(st, audit)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pollHandler.ShowVote))
	mux.HandleFunc("GET /manage", middleware.WithLogging(pollHandler.ShowManage))

	// Form posts
	mux.HandleFunc("POST /vote", middleware.WithLogging(pollHandler.Vote))
	mux.HandleFunc("POST /add_option", middleware.WithLogging(pollHandler.AddOption))
	mux.HandleFunc("POST /edit_option", middleware.WithLogging(pollHandler.EditOption))
	mux.HandleFunc("POST /remove_option", middleware.WithLogging(pollHandler.RemoveOption))
	mux.HandleFunc("GET /resetcount", middleware.WithLogging(pollHandler.ResetCount))

	// JSON API (read-only, cross-origin)
	mux.Handle("GET /api/poll", middleware.CORS(middleware.WithLogging(resultsHandler.GetPoll)))
	mux.Handle("GET /api/events", middleware.CORS(middleware.WithLogging(resultsHandler.ListEvents)))
	mux.Handle("OPTIONS /api/", middleware.CORS(http.NotFoundHandler()))

	// Live refresh
	mux.HandleFunc("GET /live", middleware.WithLogging(hub.Handler))

	// Static assets
	mux.Handle("GET /static/{path...}", renderer.Assets())

	return mux
}
