// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, event, and response types shared by the server.

# Domain Types

  - Option: one selectable choice (name, location link, vote count)
  - Poll: a copy of the question and its ordered options

Options are identified by their position in Poll.Options. A Poll value is
always a snapshot; the live state is owned by the store package.

Helpers on Poll:

	total := poll.TotalVotes()
	pct := poll.Percent(i) // 0 when nobody has voted

# Audit Events

Event records one attempted mutation and whether it was applied:

	KindVote         = "vote"
	KindAddOption    = "add_option"
	KindEditOption   = "edit_option"
	KindRemoveOption = "remove_option"
	KindResetVotes   = "reset_votes"

OptionIndex is NoIndex (-1) for events that do not target one option.

# Response Types

JSON responses for the /api routes:

  - PollResponse: question, per-option results, total votes
  - EventsResponse: recent audit events
  - ErrorResponse: error, message
*/
package models
