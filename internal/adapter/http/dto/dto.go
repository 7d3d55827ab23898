package dto

import (
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/pkg/amount"
)

// Amounts travel as base-10 strings of base units so 256-bit values survive
// JSON clients; the "amount" validator checks the format.

// RoleRequest grants or revokes one role.
type RoleRequest struct {
	Account string `json:"account" binding:"required,max=128,safe_id"`
	Role    string `json:"role" binding:"required,max=32"`
}

// IdentityRequest sets an account's KYC verification flag.
type IdentityRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// RegisterAssetRequest is the body of asset registration.
type RegisterAssetRequest struct {
	AssetType       string `json:"asset_type" binding:"required,max=64"`
	ExternalAssetID string `json:"external_asset_id" binding:"required,max=128"`
	Value           string `json:"value" binding:"required,amount"`
	Tag             string `json:"tag" binding:"max=256"`
	Metadata        string `json:"metadata" binding:"max=4096"`
}

// VerifyAssetRequest approves or rejects a pending asset.
type VerifyAssetRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Proof   string `json:"proof" binding:"max=1024"`
}

// VerifyAndTokenizeRequest verifies an asset and, on approval, mints
// TokenAmount to its owner.
type VerifyAndTokenizeRequest struct {
	Approve     *bool  `json:"approve" binding:"required"`
	Proof       string `json:"proof" binding:"max=1024"`
	TokenAmount string `json:"token_amount" binding:"amount"`
}

// MintRequest mints tokens against a verified asset.
type MintRequest struct {
	Amount    string `json:"amount" binding:"required,amount"`
	Recipient string `json:"recipient" binding:"required,max=128,safe_id"`
}

// BurnRequest destroys tokens held by Account.
type BurnRequest struct {
	Account string `json:"account" binding:"required,max=128,safe_id"`
	Amount  string `json:"amount" binding:"required,amount"`
}

// TransferRequest moves tokens from the caller to To.
type TransferRequest struct {
	To     string `json:"to" binding:"required,max=128,safe_id"`
	Amount string `json:"amount" binding:"required,amount"`
}

// RedemptionRequest asks to redeem tokens against an asset.
type RedemptionRequest struct {
	AssetID uint64 `json:"asset_id" binding:"required,gt=0"`
	Amount  string `json:"amount" binding:"required,amount"`
}

// AmountRequest carries a single amount, used by fractional tokenize/redeem.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

// AssetTypeRequest adds a category to the supported-type allowlist.
type AssetTypeRequest struct {
	Type string `json:"type" binding:"required,max=64"`
}

// VerifierRequest registers a verifier account.
type VerifierRequest struct {
	Account     string `json:"account" binding:"required,max=128,safe_id"`
	Description string `json:"description" binding:"max=256"`
}

// CallerResponse describes the authenticated caller.
type CallerResponse struct {
	Account domain.AccountID `json:"account"`
	Roles   domain.RoleSet   `json:"roles"`
}

// RolesResponse lists one account's capabilities.
type RolesResponse struct {
	Account domain.AccountID `json:"account"`
	Roles   domain.RoleSet   `json:"roles"`
}

// HasRoleResponse answers a single capability check.
type HasRoleResponse struct {
	Account domain.AccountID `json:"account"`
	Role    domain.Role      `json:"role"`
	HasRole bool             `json:"has_role"`
}

// IdentityResponse reports an account's KYC flag.
type IdentityResponse struct {
	Account  domain.AccountID `json:"account"`
	Verified bool             `json:"verified"`
}

// BalanceResponse reports an account's token balance.
type BalanceResponse struct {
	Account domain.AccountID `json:"account"`
	Balance amount.Amount    `json:"balance"`
}

// AmountResponse wraps an amount-valued query result.
type AmountResponse struct {
	Amount amount.Amount `json:"amount"`
}

// AssetFlagResponse wraps a boolean query about an asset.
type AssetFlagResponse struct {
	AssetID domain.AssetID `json:"asset_id"`
	Value   bool           `json:"value"`
}

// AssetIDResponse wraps GetAssetForTokenAmount.
type AssetIDResponse struct {
	AssetID domain.AssetID `json:"asset_id"`
}

// CountResponse wraps a count.
type CountResponse struct {
	Count uint64 `json:"count"`
}

// RatioResponse reports the issued/value ratio in basis points.
type RatioResponse struct {
	AssetID     domain.AssetID `json:"asset_id"`
	BasisPoints uint64         `json:"basis_points"`
}

// PausedResponse reports whether the ledger is paused.
type PausedResponse struct {
	Paused bool `json:"paused"`
}

// CanRedeemResponse answers CanRedeemAsset.
type CanRedeemResponse struct {
	Account   domain.AccountID `json:"account"`
	AssetID   domain.AssetID   `json:"asset_id"`
	Amount    amount.Amount    `json:"amount"`
	CanRedeem bool             `json:"can_redeem"`
}

// EventsResponse is one page of the ledger event log. NextAfter is the
// cursor for the following page.
type EventsResponse struct {
	Events    []domain.Event `json:"events"`
	NextAfter uint64         `json:"next_after"`
}
