// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	ErrMissingField = errors.New("missing form field")
	ErrNotInteger   = errors.New("form field is not an integer")
)

// FormString returns a field from the POST body.
// Query parameters are ignored, matching HTML form posts.
func FormString(r *http.Request, field string) (string, error) {
	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("failed to parse form: %w", err)
	}
	if !r.PostForm.Has(field) {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return r.PostForm.Get(field), nil
}

// OptionalFormString returns a field from the POST body, or "" when absent
func OptionalFormString(r *http.Request, field string) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.PostForm.Get(field)
}

// FormInt returns a required integer field from the POST body
func FormInt(r *http.Request, field string) (int, error) {
	raw, err := FormString(r, field)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrNotInteger, field, raw)
	}
	return n, nil
}
