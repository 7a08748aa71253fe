// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/simple-poll/cliparse"
	"github.com/danielhkuo/simple-poll/middleware"
	"github.com/danielhkuo/simple-poll/models"
	"github.com/danielhkuo/simple-poll/privacy"
	"github.com/danielhkuo/simple-poll/render"
	"github.com/danielhkuo/simple-poll/store"
)

const auditTimeout = 3 * time.Second

// Recorder persists audit events. *db.AuditLog satisfies it.
type Recorder interface {
	Record(ctx context.Context, ev models.Event) error
	Recent(ctx context.Context, limit int) ([]models.Event, error)
}

// Notifier is told after every accepted change. *live.Hub satisfies it.
type Notifier interface {
	Refresh()
}

type PollHandler struct {
	store    *store.Store
	renderer *render.Renderer
	audit    Recorder
	notifier Notifier
	cfg      cliparse.Config
}

// NewPollHandler wires the page and form handlers.
// audit and notifier may be nil.
func NewPollHandler(st *store.Store, renderer *render.Renderer, audit Recorder, notifier Notifier, cfg cliparse.Config) *PollHandler {
	return &PollHandler{
		store:    st,
		renderer: renderer,
		audit:    audit,
		notifier: notifier,
		cfg:      cfg,
	}
}

// ShowVote handles GET /
func (h *PollHandler) ShowVote(w http.ResponseWriter, r *http.Request) {
	h.render(w, render.PageVote)
}

// ShowManage handles GET /manage
func (h *PollHandler) ShowManage(w http.ResponseWriter, r *http.Request) {
	h.render(w, render.PageManage)
}

// Vote handles POST /vote
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	index, err := middleware.FormInt(r, "vote")
	if err != nil {
		badForm(w, err)
		return
	}

	ev := models.Event{Kind: models.KindVote, OptionIndex: index}
	if opt, ok := h.store.Option(index); ok {
		ev.OptionName = opt.Name
	}

	h.finish(w, r, ev, h.store.CastVote(index), "/")
}

// AddOption handles POST /add_option
func (h *PollHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	name, err := middleware.FormString(r, "new_option")
	if err != nil {
		badForm(w, err)
		return
	}
	location := middleware.OptionalFormString(r, "new_location")

	ev := models.Event{
		Kind:        models.KindAddOption,
		OptionIndex: models.NoIndex,
		OptionName:  strings.TrimSpace(name),
	}

	err = h.store.AddOption(name, location)
	if err == nil {
		ev.OptionIndex = h.store.Len() - 1
	}

	h.finish(w, r, ev, err, "/manage")
}

// EditOption handles POST /edit_option
func (h *PollHandler) EditOption(w http.ResponseWriter, r *http.Request) {
	index, err := middleware.FormInt(r, "option_index")
	if err != nil {
		badForm(w, err)
		return
	}
	name, err := middleware.FormString(r, "option_name")
	if err != nil {
		badForm(w, err)
		return
	}
	location := middleware.OptionalFormString(r, "option_location")

	ev := models.Event{
		Kind:        models.KindEditOption,
		OptionIndex: index,
		OptionName:  strings.TrimSpace(name),
	}

	h.finish(w, r, ev, h.store.EditOption(index, name, location), "/manage")
}

// RemoveOption handles POST /remove_option
func (h *PollHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	index, err := middleware.FormInt(r, "option_index")
	if err != nil {
		badForm(w, err)
		return
	}

	ev := models.Event{Kind: models.KindRemoveOption, OptionIndex: index}
	if opt, ok := h.store.Option(index); ok {
		ev.OptionName = opt.Name
	}

	h.finish(w, r, ev, h.store.RemoveOption(index), "/manage")
}

// ResetCount handles GET /resetcount
func (h *PollHandler) ResetCount(w http.ResponseWriter, r *http.Request) {
	h.store.ResetVotes()

	ev := models.Event{Kind: models.KindResetVotes, OptionIndex: models.NoIndex}
	h.finish(w, r, ev, nil, "/manage")
}

func (h *PollHandler) render(w http.ResponseWriter, page string) {
	data := render.PageData{
		Poll:       h.store.Snapshot(),
		MapsAPIKey: h.cfg.MapsAPIKey,
	}

	if err := h.renderer.Render(w, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// finish records the outcome of a form post and redirects.
// Rejected changes redirect too; the page simply shows the unchanged poll.
func (h *PollHandler) finish(w http.ResponseWriter, r *http.Request, ev models.Event, opErr error, target string) {
	ev.Accepted = opErr == nil
	if opErr != nil {
		ev.Reason = opErr.Error()
		slog.Info("poll change rejected", "kind", ev.Kind, "option_index", ev.OptionIndex, "reason", ev.Reason)
	} else {
		slog.Info("poll changed", "kind", ev.Kind, "option_index", ev.OptionIndex, "option_name", ev.OptionName)
	}

	h.record(r, ev)

	if ev.Accepted && h.notifier != nil {
		h.notifier.Refresh()
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// record writes ev to the audit trail. Failures are logged, never returned.
func (h *PollHandler) record(r *http.Request, ev models.Event) {
	if h.audit == nil {
		return
	}

	ev.IPHash = privacy.HashIP(middleware.GetClientIP(r), h.cfg.SecretKey)

	// Keep writing even if the client has gone away
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), auditTimeout)
	defer cancel()

	if err := h.audit.Record(ctx, ev); err != nil {
		slog.Warn("failed to record audit event", "kind", ev.Kind, "error", err)
	}
}

func badForm(w http.ResponseWriter, err error) {
	slog.Info("bad form post", "error", err)

	msg := "Invalid form"
	if errors.Is(err, middleware.ErrMissingField) || errors.Is(err, middleware.ErrNotInteger) {
		msg = err.Error()
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, msg)
}
