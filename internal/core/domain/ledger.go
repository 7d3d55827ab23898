package domain

import (
	"time"

	"rwa-ledger/pkg/amount"
)

// Balance is the claim-token balance of one account. A zero balance row is
// kept once the account has been touched.
type Balance struct {
	Account   AccountID     `json:"account"`
	Amount    amount.Amount `json:"amount"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SupportedAssetType is an allowlist entry consulted by validated registration.
type SupportedAssetType struct {
	Type    AssetType `json:"type"`
	AddedBy AccountID `json:"added_by"`
	AddedAt time.Time `json:"added_at"`
}

// LedgerMeta holds the singleton counters of the ledger.
type LedgerMeta struct {
	NextAssetID   AssetID       `json:"next_asset_id"`
	NextRequestID RequestID     `json:"next_request_id"`
	TotalSupply   amount.Amount `json:"total_supply"`
	Paused        bool          `json:"paused"`
	EventSeq      uint64        `json:"event_seq"`
	LastEventHash string        `json:"last_event_hash"`
}

// NewLedgerMeta returns the meta row of an empty ledger.
func NewLedgerMeta() LedgerMeta {
	return LedgerMeta{
		NextAssetID:   1,
		NextRequestID: 1,
		TotalSupply:   amount.Zero(),
		LastEventHash: GenesisHash,
	}
}
