package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rwa-ledger/internal/adapter/storage/ledgerstore"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	admin    domain.AccountID = "admin"
	verifier domain.AccountID = "verifier"
	minter   domain.AccountID = "minter"
	burner   domain.AccountID = "burner"
	kycAdmin domain.AccountID = "kyc"
	alice    domain.AccountID = "alice"
	bob      domain.AccountID = "bob"
	mallory  domain.AccountID = "mallory"
)

type testLedger struct {
	store    *ledgerstore.Store
	core     *LedgerCore
	access   *AccessServiceImpl
	identity *IdentityServiceImpl
	registry *RegistryServiceImpl
	tokens   *TokenLedgerServiceImpl
	manager  *ManagerServiceImpl
}

// steppingClock advances one second per reading so timestamps are ordered.
func steppingClock() func() time.Time {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var n atomic.Int64
	return func() time.Time {
		return base.Add(time.Duration(n.Add(1)) * time.Second)
	}
}

func newTestLedger(t *testing.T, opts LedgerOptions) *testLedger {
	t.Helper()

	store, err := ledgerstore.New(zerolog.Nop(), ledgerstore.WithClock(steppingClock()))
	require.NoError(t, err)

	if opts.TokenDecimals == 0 {
		opts.TokenDecimals = 18
	}
	core := NewLedgerCore(store, opts)
	l := &testLedger{
		store:    store,
		core:     core,
		access:   NewAccessService(core, zerolog.Nop()),
		identity: NewIdentityService(core, zerolog.Nop()),
		registry: NewRegistryService(core, zerolog.Nop()),
		tokens:   NewTokenLedgerService(core, zerolog.Nop()),
		manager:  NewManagerService(core, zerolog.Nop()),
	}

	plan := &BootstrapPlan{
		Roles: []BootstrapRole{
			{Account: string(admin), Roles: []domain.Role{domain.RoleAdmin}},
			{Account: string(verifier), Roles: []domain.Role{domain.RoleVerifier}},
			{Account: string(minter), Roles: []domain.Role{domain.RoleMinter}},
			{Account: string(burner), Roles: []domain.Role{domain.RoleBurner}},
			{Account: string(kycAdmin), Roles: []domain.Role{domain.RoleKYCAdmin}},
		},
		AssetTypes: []string{"REAL_ESTATE", "ART"},
		Identities: []BootstrapIdentity{
			{Account: string(alice), Verified: true},
			{Account: string(bob), Verified: true},
		},
	}
	applied, err := NewBootstrapService(core, zerolog.Nop()).Apply(context.Background(), plan)
	require.NoError(t, err)
	require.True(t, applied)
	return l
}

func (l *testLedger) register(t *testing.T, owner domain.AccountID, externalID string, value uint64) domain.AssetID {
	t.Helper()
	asset, err := l.registry.RegisterAsset(context.Background(), owner, ports.RegisterAssetInput{
		AssetType:       "REAL_ESTATE",
		ExternalAssetID: externalID,
		Value:           amount.New(value),
	})
	require.NoError(t, err)
	return asset.ID
}

// tokenize runs register, verify, markAsTokenized and mint for owner.
func (l *testLedger) tokenize(t *testing.T, owner domain.AccountID, externalID string, value, tokens uint64) domain.AssetID {
	t.Helper()
	ctx := context.Background()
	id := l.register(t, owner, externalID, value)
	_, err := l.registry.VerifyAsset(ctx, verifier, id, true, "ok")
	require.NoError(t, err)
	_, err = l.registry.MarkAsTokenized(ctx, admin, id)
	require.NoError(t, err)
	_, err = l.tokens.MintForAsset(ctx, minter, id, amount.New(tokens), owner)
	require.NoError(t, err)
	return id
}

func (l *testLedger) balance(t *testing.T, account domain.AccountID) amount.Amount {
	t.Helper()
	bal, err := l.tokens.BalanceOf(context.Background(), account)
	require.NoError(t, err)
	return bal
}

func (l *testLedger) asset(t *testing.T, id domain.AssetID) *domain.Asset {
	t.Helper()
	asset, err := l.registry.GetAsset(context.Background(), id)
	require.NoError(t, err)
	return asset
}

func (l *testLedger) eventSeq(t *testing.T) uint64 {
	t.Helper()
	stats, err := l.manager.GetSystemStats(context.Background())
	require.NoError(t, err)
	return stats.LastEventSeq
}

// requireSupplyMatchesBalances checks that total supply equals the sum of
// every balance.
func (l *testLedger) requireSupplyMatchesBalances(t *testing.T) {
	t.Helper()
	err := l.store.View(context.Background(), func(tx ports.LedgerReader) error {
		sum := amount.Zero()
		for _, b := range tx.Balances() {
			var err error
			sum, err = sum.Add(b.Amount)
			if err != nil {
				return err
			}
		}
		if !sum.Equal(tx.Meta().TotalSupply) {
			return fmt.Errorf("supply %s != balances %s", tx.Meta().TotalSupply, sum)
		}
		return nil
	})
	require.NoError(t, err)
}

func units(n uint64) amount.Amount { return amount.New(n) }
