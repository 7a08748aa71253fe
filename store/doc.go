// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the in-memory poll.

# Store

A Store holds one question and an ordered list of options. It is created
once at start-up and injected into the HTTP handlers:

	st := store.NewFromSeed(store.DefaultSeed())
	mux := router.NewRouter(st, nil, cfg)

Nothing is written to disk; a restart starts from the seed again.

# Mutations

Options are addressed by position. Each mutation returns an error wrapping
one of the sentinels below and leaves the poll untouched when it does:

	CastVote(i)             ErrIndexOutOfRange
	AddOption(name, loc)    ErrEmptyName, ErrDuplicateName
	EditOption(i, name, loc) ErrIndexOutOfRange, ErrEmptyName
	RemoveOption(i)         ErrIndexOutOfRange, ErrLastOption
	ResetVotes()            never fails

Names and locations are trimmed. Duplicate names are only rejected on add.

# Seeds

The poll starts from DefaultSeed or from a YAML poll file:

	question: "Comida de despedida"
	options:
	  - name: "Bristol Pub"
	    location: "https://www.google.com/maps/place/Bristol+Pub"

	seed, err := store.LoadSeed("poll.yml")
*/
package store
