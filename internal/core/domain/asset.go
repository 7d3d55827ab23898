package domain

import (
	"strings"
	"time"

	"rwa-ledger/pkg/amount"
)

// AssetID is a sequential identifier assigned at registration, starting at 1.
type AssetID uint64

// AssetType is a category tag drawn from the supported-type allowlist.
type AssetType string

// NormalizeAssetType trims and uppercases a category tag.
func NormalizeAssetType(s string) AssetType {
	return AssetType(strings.ToUpper(strings.TrimSpace(s)))
}

// AssetStatus represents the lifecycle state of an asset.
type AssetStatus string

const (
	AssetStatusPending   AssetStatus = "PENDING"
	AssetStatusVerified  AssetStatus = "VERIFIED"
	AssetStatusRejected  AssetStatus = "REJECTED"
	AssetStatusTokenized AssetStatus = "TOKENIZED"
	AssetStatusRedeemed  AssetStatus = "REDEEMED"
)

var assetTransitions = map[AssetStatus][]AssetStatus{
	AssetStatusPending:   {AssetStatusVerified, AssetStatusRejected},
	AssetStatusVerified:  {AssetStatusTokenized},
	AssetStatusTokenized: {AssetStatusRedeemed},
}

// CanTransitionTo reports whether next directly follows s in the lifecycle.
func (s AssetStatus) CanTransitionTo(next AssetStatus) bool {
	for _, allowed := range assetTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true for Rejected and Redeemed.
func (s AssetStatus) IsTerminal() bool {
	return s == AssetStatusRejected || s == AssetStatusRedeemed
}

// Asset is the canonical record of a registered real-world asset.
// Owner is fixed at registration; tokens representing the asset move
// independently of it.
type Asset struct {
	ID                AssetID       `json:"id"`
	Owner             AccountID     `json:"owner"`
	AssetType         AssetType     `json:"asset_type"`
	ExternalAssetID   string        `json:"external_asset_id"`
	Value             amount.Amount `json:"value"`
	Tag               string        `json:"tag,omitempty"`
	Metadata          string        `json:"metadata,omitempty"`
	Status            AssetStatus   `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	VerifiedAt        *time.Time    `json:"verified_at,omitempty"`
	Verifier          AccountID     `json:"verifier,omitempty"`
	VerificationProof string        `json:"verification_proof,omitempty"`
}

// IsVerified returns true once the asset has passed verification, including
// after it has moved on to Tokenized or Redeemed.
func (a *Asset) IsVerified() bool {
	switch a.Status {
	case AssetStatusVerified, AssetStatusTokenized, AssetStatusRedeemed:
		return true
	}
	return false
}

// IsTokenized returns true while claim-tokens are outstanding against the asset.
func (a *Asset) IsTokenized() bool {
	return a.Status == AssetStatusTokenized
}
