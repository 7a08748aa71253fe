// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the poll server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, renderer, hub, audit, cfg)

hub and audit may be nil.

# Endpoints

Health:

	GET /health

Pages:

	GET /        - Vote form and results
	GET /manage  - Option management

Form posts (all redirect with 302):

	POST /vote          - Count one vote
	POST /add_option    - Append an option
	POST /edit_option   - Rename an option and set its location
	POST /remove_option - Delete an option
	GET  /resetcount    - Zero every vote count

JSON (CORS enabled):

	GET /api/poll   - Current poll with percentages
	GET /api/events - Recent audit events

Other:

	GET /live             - WebSocket; sends "refresh" after each accepted change
	GET /static/{path...} - Embedded CSS and JS

Every route except /health and /static is wrapped with request logging.
*/
package router
