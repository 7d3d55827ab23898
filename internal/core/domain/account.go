package domain

import (
	"errors"
	"strings"
)

// MaxAccountLength bounds account identifiers accepted from callers.
const MaxAccountLength = 128

// ErrInvalidAccount is returned by ParseAccount for empty or oversized input.
var ErrInvalidAccount = errors.New("invalid account identifier")

// AccountID identifies a ledger participant. The ledger treats it as opaque;
// the HTTP layer derives it from the authenticated bearer token.
type AccountID string

// ParseAccount trims s and checks it is usable as an account identifier.
// Hex addresses (0x...) are lowercased so the same address always maps to
// the same balance row.
func ParseAccount(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxAccountLength {
		return "", ErrInvalidAccount
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = strings.ToLower(s)
	}
	return AccountID(s), nil
}

func (a AccountID) String() string { return string(a) }

// IsZero reports whether a is the empty account.
func (a AccountID) IsZero() bool { return a == "" }
