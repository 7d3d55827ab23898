package ports

import (
	"context"
	"time"

	"rwa-ledger/internal/core/domain"
)

// LedgerStore is the single owned state store behind every ledger operation.
// Update runs fn inside the one serialized write transaction; any error from
// fn discards every staged write. View runs fn against a consistent,
// point-in-time snapshot without blocking writers.
type LedgerStore interface {
	Update(ctx context.Context, fn func(tx LedgerTx) error) error
	View(ctx context.Context, fn func(tx LedgerReader) error) error
}

// LedgerReader reads the ledger tables. Lookups that miss return
// (nil, false) or empty slices; they never fail.
type LedgerReader interface {
	Now() time.Time

	Meta() domain.LedgerMeta

	Asset(id domain.AssetID) (*domain.Asset, bool)
	AssetByExternalID(externalID string) (*domain.Asset, bool)
	AssetsByOwner(owner domain.AccountID) []domain.Asset
	AssetsByStatus(status domain.AssetStatus) []domain.Asset
	AllAssets() []domain.Asset

	Issuance(id domain.AssetID) (*domain.TokenIssuance, bool)
	Issuances() []domain.TokenIssuance

	Redemption(id domain.RequestID) (*domain.RedemptionRequest, bool)
	Redemptions() []domain.RedemptionRequest
	RedemptionsByRequester(account domain.AccountID) []domain.RedemptionRequest

	Balance(account domain.AccountID) domain.Balance
	Balances() []domain.Balance

	Identity(account domain.AccountID) (*domain.IdentityRecord, bool)
	Identities() []domain.IdentityRecord

	Roles(account domain.AccountID) domain.RoleSet
	RoleGrants() []domain.RoleGrant

	HasAssetType(t domain.AssetType) bool
	AssetTypes() []domain.SupportedAssetType

	Verifier(account domain.AccountID) (*domain.VerifierInfo, bool)
	Verifiers() []domain.VerifierInfo

	// Events returns committed events with Seq > after, oldest first, at most limit (0 = all).
	Events(after uint64, limit int) []domain.Event
}

// LedgerTx is a write transaction. Put* stage a full-row replacement.
type LedgerTx interface {
	LedgerReader

	PutMeta(m domain.LedgerMeta) error
	PutAsset(a domain.Asset) error
	PutIssuance(i domain.TokenIssuance) error
	PutRedemption(r domain.RedemptionRequest) error
	PutBalance(b domain.Balance) error
	PutIdentity(r domain.IdentityRecord) error
	PutRoles(g domain.RoleGrant) error
	PutAssetType(t domain.SupportedAssetType) error
	DeleteAssetType(t domain.AssetType) error
	PutVerifier(v domain.VerifierInfo) error

	// Emit stages an event; the store seals and appends it at commit.
	Emit(e domain.Event)
}

// EventSink receives events after the transaction that produced them commits.
type EventSink interface {
	Publish(ctx context.Context, events []domain.Event)
}
