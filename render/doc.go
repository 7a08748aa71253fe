// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render turns a poll snapshot into the vote and manage pages.

Templates and static files are embedded in the binary. Pages share
templates/layout.html, which also holds the results partial.

# Template Functions

On top of sprig's function map:

	asset     versioned /static/ URL (?v=<md5 prefix>)
	comma     vote counts with thousands separators
	percent   share of the vote for option i, one decimal
	markdown  the question rendered as Markdown; raw HTML is dropped

# Environments

In prod, pages, CSS and JS are minified and static files are served
pre-gzipped with immutable caching. In dev nothing is minified and
assets are served with no-store.
*/
package render
