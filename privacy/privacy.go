// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package privacy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashIP creates a one-way hash of an IP address for the audit trail.
// Keyed with the server secret. Returns "" for an empty address.
func HashIP(ip, secret string) string {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return ""
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// 16 hex chars
	return hex.EncodeToString(sum[:8])
}
