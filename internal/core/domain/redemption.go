package domain

import (
	"time"

	"rwa-ledger/pkg/amount"
)

// RequestID is a sequential redemption request identifier, starting at 1.
type RequestID uint64

// RedemptionRequest queues a burn of TokenAmount from Requester against AssetID.
type RedemptionRequest struct {
	ID          RequestID     `json:"id"`
	Requester   AccountID     `json:"requester"`
	AssetID     AssetID       `json:"asset_id"`
	TokenAmount amount.Amount `json:"token_amount"`
	RequestTime time.Time     `json:"request_time"`
	Approved    bool          `json:"approved"`
	Processed   bool          `json:"processed"`
	ApprovedAt  *time.Time    `json:"approved_at,omitempty"`
	ProcessedAt *time.Time    `json:"processed_at,omitempty"`
}
