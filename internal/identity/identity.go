// Package identity generates the opaque, prefixed identifiers used across the
// API. Identifiers carry a short type prefix so that a raw id in a log line or
// a support ticket is self-describing.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// NewUserID returns a user identifier of the form "user_1a2b3c4d".
func NewUserID() string {
	return "user_" + randomHex(8)
}

// NewToken returns an opaque bearer token of the form "token_<24 hex chars>".
// Tokens are credentials: they are only meaningful via a Token Store lookup
// and carry no embedded claims.
func NewToken() string {
	return "token_" + randomHex(24)
}

// NewTransactionID returns a transaction identifier of the form "txn_<12 hex chars>".
func NewTransactionID() string {
	return "txn_" + randomHex(12)
}

// randomHex returns n hex characters drawn from a random UUID. n must be <= 32.
func randomHex(n int) string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:n]
}
