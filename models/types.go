// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Event kinds recorded in the audit trail
const (
	KindVote         = "vote"
	KindAddOption    = "add_option"
	KindEditOption   = "edit_option"
	KindRemoveOption = "remove_option"
	KindResetVotes   = "reset_votes"
)

// NoIndex marks events that do not target a single option
const NoIndex = -1

// Domain types

type Option struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Votes    int    `json:"votes"`
}

// Poll is a point-in-time copy of the poll state.
// Mutating it never affects the store it came from.
type Poll struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// TotalVotes sums the vote counts of every option
func (p Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.Votes
	}
	return total
}

// Percent returns the share of all votes held by option i, in [0, 100].
// Returns 0 when nobody has voted yet or i is out of range.
func (p Poll) Percent(i int) float64 {
	total := p.TotalVotes()
	if total == 0 || i < 0 || i >= len(p.Options) {
		return 0
	}
	return float64(p.Options[i].Votes) * 100 / float64(total)
}

type Event struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	OptionIndex int       `json:"option_index"`
	OptionName  string    `json:"option_name,omitempty"`
	Accepted    bool      `json:"accepted"`
	Reason      string    `json:"reason,omitempty"`
	IPHash      string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"created_at"`
}

// Response types

type OptionResult struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Location string  `json:"location,omitempty"`
	Votes    int     `json:"votes"`
	Percent  float64 `json:"percent"`
}

type PollResponse struct {
	Question   string         `json:"question"`
	Options    []OptionResult `json:"options"`
	TotalVotes int            `json:"total_votes"`
	VotesLabel string         `json:"votes_label"` // e.g. "1,204"
}

type EventsResponse struct {
	Events []Event `json:"events"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
