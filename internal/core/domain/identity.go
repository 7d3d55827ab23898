package domain

import "time"

// IdentityRecord is the KYC verification flag of one account.
type IdentityRecord struct {
	Account   AccountID `json:"account"`
	Verified  bool      `json:"verified"`
	UpdatedBy AccountID `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VerifierInfo is an administrative roster entry. It does not grant the
// Verifier role.
type VerifierInfo struct {
	Account      AccountID `json:"account"`
	Description  string    `json:"description"`
	RegisteredBy AccountID `json:"registered_by"`
	RegisteredAt time.Time `json:"registered_at"`
}
