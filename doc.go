// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Simple Poll server.

Simple Poll serves one question with a list of options. Anyone can vote, and
anyone can add, rename, remove options or reset the counts from /manage.
The poll lives in memory and starts over from its seed on every restart.

# Starting the Server

With no configuration the server listens on port 5000 and uses the built-in
seed poll:

	go run .

Or with flags:

	go run . -p 8080 -env dev -poll poll.yml

# Configuration

All settings are optional. A .env file in the working directory is loaded
first.

  - PORT (-p): Server port (default: 5000)
  - APP_ENV (-env): dev or prod (default: prod)
  - SECRET_KEY (-secret): Secret for IP hashing; a warning is logged while the default is used
  - GOOGLE_MAPS_API_KEY (-maps-key): Enables the map widget
  - POLL_FILE (-poll): YAML seed file
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Audit trail database (sqlite or postgres)
  - LOG_LEVEL (-log-level): debug, info, warn, error

# Architecture

  - store: The in-memory poll and its mutations
  - handlers: HTTP request handlers (pages, form posts, JSON)
  - router: Route definitions using Go 1.22+ routing
  - render: Embedded templates and static assets
  - live: WebSocket refresh notifications
  - middleware: Logging, CORS, JSON and form helpers
  - models: Domain and response types
  - privacy: IP hashing
  - db: Audit trail storage
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
