// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the optional audit trail of poll mutations.

The poll itself is never persisted. When a database is configured, every
attempted vote and option change is appended to poll_event, whether the store
accepted it or not. Nothing reads these rows back at start-up.

# Connecting

Open selects the driver and pings the database:

	conn, err := db.Open("sqlite", "file:audit.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses modernc.org/sqlite (pure Go, limited to one open connection);
PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes the table and indexes:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The DDL is portable
between both databases.

# Audit Log

	audit := db.NewAuditLog(conn)
	err := audit.Record(ctx, models.Event{Kind: models.KindVote, OptionIndex: 2, Accepted: true})
	events, err := audit.Recent(ctx, 50) // newest first

Record fills in a UUID and the current time when they are missing.
*/
package db
