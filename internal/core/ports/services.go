package ports

import (
	"context"
	"time"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/pkg/amount"
)

// Mutating operations take the calling account as their first argument after
// ctx. The caller is trusted as authenticated; each operation checks its
// capabilities.

// AccessService administers role capabilities.
type AccessService interface {
	GrantRole(ctx context.Context, caller, account domain.AccountID, role domain.Role) (domain.RoleSet, error)
	RevokeRole(ctx context.Context, caller, account domain.AccountID, role domain.Role) (domain.RoleSet, error)
	HasRole(ctx context.Context, account domain.AccountID, role domain.Role) (bool, error)
	Capabilities(ctx context.Context, account domain.AccountID) (domain.RoleSet, error)
	ListRoleGrants(ctx context.Context) ([]domain.RoleGrant, error)
}

// IdentityService is the KYC compliance registry.
type IdentityService interface {
	SetVerified(ctx context.Context, caller, account domain.AccountID, verified bool) (*domain.IdentityRecord, error)
	IsVerified(ctx context.Context, account domain.AccountID) (bool, error)
}

// RegisterAssetInput holds validated input for asset registration.
type RegisterAssetInput struct {
	AssetType       domain.AssetType
	ExternalAssetID string
	Value           amount.Amount
	Tag             string
	Metadata        string
}

// RegistryService owns asset records and their status machine.
type RegistryService interface {
	RegisterAsset(ctx context.Context, caller domain.AccountID, in RegisterAssetInput) (*domain.Asset, error)
	VerifyAsset(ctx context.Context, caller domain.AccountID, id domain.AssetID, approve bool, proof string) (*domain.Asset, error)
	MarkAsTokenized(ctx context.Context, caller domain.AccountID, id domain.AssetID) (*domain.Asset, error)
	MarkAsRedeemed(ctx context.Context, caller domain.AccountID, id domain.AssetID) (*domain.Asset, error)

	GetAsset(ctx context.Context, id domain.AssetID) (*domain.Asset, error)
	GetAssetsByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Asset, error)
	GetPendingAssets(ctx context.Context) ([]domain.Asset, error)
	GetVerifiedAssets(ctx context.Context) ([]domain.Asset, error)
	GetTokenizedAssets(ctx context.Context) ([]domain.Asset, error)
	GetTotalAssets(ctx context.Context) (uint64, error)
	IsAssetVerified(ctx context.Context, id domain.AssetID) (bool, error)
	IsAssetTokenized(ctx context.Context, id domain.AssetID) (bool, error)
}

// TokenLedgerService is the fungible claim-token ledger.
type TokenLedgerService interface {
	MintForAsset(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount, recipient domain.AccountID) (*domain.TokenIssuance, error)
	Burn(ctx context.Context, caller, account domain.AccountID, amt amount.Amount) error
	Transfer(ctx context.Context, caller, to domain.AccountID, amt amount.Amount) error
	RequestRedemption(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount) (*domain.RedemptionRequest, error)
	ApproveRedemption(ctx context.Context, caller domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error)
	ProcessRedemption(ctx context.Context, caller domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error)
	Pause(ctx context.Context, caller domain.AccountID) error
	Unpause(ctx context.Context, caller domain.AccountID) error

	IsPaused(ctx context.Context) (bool, error)
	GetTokensForAsset(ctx context.Context, id domain.AssetID) (amount.Amount, error)
	GetAssetForTokenAmount(ctx context.Context, amt amount.Amount) (domain.AssetID, error)
	GetRedemptionRequest(ctx context.Context, id domain.RequestID) (*domain.RedemptionRequest, error)
	GetAllRedemptionRequests(ctx context.Context) ([]domain.RedemptionRequest, error)
	GetRedemptionRequestsByUser(ctx context.Context, account domain.AccountID) ([]domain.RedemptionRequest, error)
	BalanceOf(ctx context.Context, account domain.AccountID) (amount.Amount, error)
	TotalSupply(ctx context.Context) (amount.Amount, error)
}

// UserAsset pairs an owned asset with the tokens issued against it.
type UserAsset struct {
	Asset        domain.Asset  `json:"asset"`
	TokensIssued amount.Amount `json:"tokens_issued"`
}

// UserAssets is the per-account dashboard view.
type UserAssets struct {
	Account domain.AccountID `json:"account"`
	Balance amount.Amount    `json:"balance"`
	Assets  []UserAsset      `json:"assets"`
}

// AssetStatusView combines an asset with its issuance state.
type AssetStatusView struct {
	Asset       domain.Asset          `json:"asset"`
	TokenAmount amount.Amount         `json:"token_amount"`
	IsVerified  bool                  `json:"is_verified"`
	IsTokenized bool                  `json:"is_tokenized"`
	Issuance    *domain.TokenIssuance `json:"issuance,omitempty"`
}

// SystemStats is the ledger-wide summary.
type SystemStats struct {
	TotalAssets     uint64              `json:"total_assets"`
	PendingAssets   uint64              `json:"pending_assets"`
	VerifiedAssets  uint64              `json:"verified_assets"`
	RejectedAssets  uint64              `json:"rejected_assets"`
	TokenizedAssets uint64              `json:"tokenized_assets"`
	RedeemedAssets  uint64              `json:"redeemed_assets"`
	TotalSupply     amount.Amount       `json:"total_supply"`
	Redemptions     uint64              `json:"redemptions"`
	Paused          bool                `json:"paused"`
	Mode            domain.IssuanceMode `json:"mode"`
	LastEventSeq    uint64              `json:"last_event_seq"`
}

// ManagerService is the orchestration facade over Registry and Ledger.
type ManagerService interface {
	AddAssetType(ctx context.Context, caller domain.AccountID, t domain.AssetType) error
	RemoveAssetType(ctx context.Context, caller domain.AccountID, t domain.AssetType) error
	GetSupportedAssetTypes(ctx context.Context) ([]domain.SupportedAssetType, error)
	RegisterAssetWithValidation(ctx context.Context, caller domain.AccountID, in RegisterAssetInput) (*domain.Asset, error)
	RegisterVerifier(ctx context.Context, caller, account domain.AccountID, description string) (*domain.VerifierInfo, error)
	GetVerifiers(ctx context.Context) ([]domain.VerifierInfo, error)

	VerifyAndTokenize(ctx context.Context, caller domain.AccountID, id domain.AssetID, approve bool, proof string, tokenAmount amount.Amount) (*AssetStatusView, error)
	ProcessRedemptionFlow(ctx context.Context, caller domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error)

	TokenizeAsset(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount) (*domain.TokenIssuance, error)
	RedeemTokens(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount) (*domain.TokenIssuance, error)
	GetTokenizationRatio(ctx context.Context, id domain.AssetID) (uint64, error)
	GetAssetBackingPerToken(ctx context.Context, id domain.AssetID) (amount.Amount, error)
	GetRemainingTokenizationAmount(ctx context.Context, id domain.AssetID) (amount.Amount, error)
	GetTokenizationAmount(ctx context.Context, id domain.AssetID) (amount.Amount, error)
	GetRedemptionAmount(ctx context.Context, id domain.AssetID) (amount.Amount, error)
	GetAllTokenizedAssets(ctx context.Context) ([]domain.TokenIssuance, error)

	GetUserAssets(ctx context.Context, account domain.AccountID) (*UserAssets, error)
	GetAssetStatus(ctx context.Context, id domain.AssetID) (*AssetStatusView, error)
	GetSystemStats(ctx context.Context) (*SystemStats, error)
	CanRedeemAsset(ctx context.Context, account domain.AccountID, id domain.AssetID, amt amount.Amount) (bool, error)
	ListEvents(ctx context.Context, after uint64, limit int) ([]domain.Event, error)
}

// TokenService issues and validates caller bearer tokens.
type TokenService interface {
	Generate(account domain.AccountID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Account domain.AccountID
}

// IdempotencyCache stores replayable responses of mutating calls.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IdempotencyLock reserves an idempotency key while its first request runs.
type IdempotencyLock interface {
	// Acquire returns true if the key was free and is now held by the caller.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
