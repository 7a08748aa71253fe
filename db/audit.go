// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/simple-poll/models"
)

type AuditLog struct {
	db *sql.DB
}

func NewAuditLog(db *sql.DB) *AuditLog {
	return &AuditLog{db: db}
}

// Record stores one event. A missing ID or timestamp is filled in.
func (a *AuditLog) Record(ctx context.Context, ev models.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO poll_event (id, kind, option_index, option_name, accepted, reason, ip_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, ev.ID, ev.Kind, ev.OptionIndex, ev.OptionName, ev.Accepted, ev.Reason, ev.IPHash, ev.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("failed to insert %s event: %w", ev.Kind, err)
	}
	return nil
}

// Recent returns up to limit events, newest first
func (a *AuditLog) Recent(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, kind, option_index, option_name, accepted, reason, ip_hash, created_at
		FROM poll_event
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var ev models.Event
		if err := rows.Scan(&ev.ID, &ev.Kind, &ev.OptionIndex, &ev.OptionName,
			&ev.Accepted, &ev.Reason, &ev.IPHash, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}
