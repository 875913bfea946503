package identity

import (
	"strings"
	"testing"
)

func assertPrefixedHex(t *testing.T, id, prefix string, hexLen int) {
	t.Helper()

	if !strings.HasPrefix(id, prefix) {
		t.Fatalf("expected prefix %q, got %q", prefix, id)
	}
	suffix := strings.TrimPrefix(id, prefix)
	if len(suffix) != hexLen {
		t.Fatalf("expected %d hex chars, got %d in %q", hexLen, len(suffix), id)
	}
	for _, r := range suffix {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Fatalf("non-hex character %q in %q", r, id)
		}
	}
}

func TestNewUserID(t *testing.T) {
	assertPrefixedHex(t, NewUserID(), "user_", 8)
}

func TestNewToken(t *testing.T) {
	assertPrefixedHex(t, NewToken(), "token_", 24)
}

func TestNewTransactionID(t *testing.T) {
	assertPrefixedHex(t, NewTransactionID(), "txn_", 12)
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewToken()
		if seen[id] {
			t.Fatalf("duplicate token %q", id)
		}
		seen[id] = true
	}
}
