package domain

import "time"

// SnapshotVersion is bumped when the snapshot layout changes.
const SnapshotVersion = 1

// LedgerSnapshot is a point-in-time export of every ledger table.
type LedgerSnapshot struct {
	Version    int                  `json:"version"`
	TakenAt    time.Time            `json:"taken_at"`
	Meta       LedgerMeta           `json:"meta"`
	Assets     []Asset              `json:"assets"`
	Issuances  []TokenIssuance      `json:"issuances"`
	Requests   []RedemptionRequest  `json:"requests"`
	Balances   []Balance            `json:"balances"`
	Identities []IdentityRecord     `json:"identities"`
	Roles      []RoleGrant          `json:"roles"`
	AssetTypes []SupportedAssetType `json:"asset_types"`
	Verifiers  []VerifierInfo       `json:"verifiers"`
	Events     []Event              `json:"events"`
}
