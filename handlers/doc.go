// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the poll pages and the JSON API.

# Handler Types

  - PollHandler: the two pages and every form post that changes the poll
  - ResultsHandler: read-only JSON (current poll, audit trail)

Both share the in-memory store passed to their constructors:

	pollHandler := handlers.NewPollHandler(st, renderer, audit, hub, cfg)

audit and hub may be nil; nothing is recorded or broadcast then.

# Form Posts

	POST /vote           vote                                          → /
	POST /add_option     new_option, new_location                      → /manage
	POST /edit_option    option_index, option_name, option_location    → /manage
	POST /remove_option  option_index                                  → /manage
	GET  /resetcount                                                   → /manage

Every post answers 302. A change the store rejects (index out of range,
empty or duplicate name, removing the last option) still redirects; the page
shows the unchanged poll. Only a missing required field or a non-integer
index gets 400.

Accepted and rejected changes are both written to the audit trail with a
hashed client IP. Accepted changes also trigger a live refresh.

# JSON API

	GET /api/poll              → PollResponse
	GET /api/events?limit=N    → EventsResponse (404 without a database)
*/
package handlers
