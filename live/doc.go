// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package live pushes poll changes to open pages over WebSocket.

	hub := live.NewHub()
	mux.HandleFunc("GET /live", hub.Handler)
	hub.Refresh() // after every accepted mutation

Pages connect to /live and reload their results when they receive
RefreshMessage. Clients that fail a write are dropped.
*/
package live
