// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package privacy keeps voter addresses out of stored data.

# IP Hashing

The audit trail stores a keyed hash instead of the client address:

	hash := privacy.HashIP(middleware.GetClientIP(r), cfg.SecretKey)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256, or "" when the
address is empty. The same address and secret always give the same hash, so
repeated votes from one client can be spotted without keeping the address.
*/
package privacy
