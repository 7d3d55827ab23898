package ledgerstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recordingSink) Publish(_ context.Context, events []domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	s, err := New(zerolog.Nop(), opts...)
	require.NoError(t, err)
	return s
}

func putAsset(t *testing.T, s *Store, a domain.Asset) {
	t.Helper()
	require.NoError(t, s.Update(context.Background(), func(tx ports.LedgerTx) error {
		return tx.PutAsset(a)
	}))
}

func TestStore_NewHasEmptyMeta(t *testing.T) {
	s := newTestStore(t)

	empty, err := s.IsEmpty(context.Background())
	require.NoError(t, err)
	assert.True(t, empty)

	err = s.View(context.Background(), func(tx ports.LedgerReader) error {
		m := tx.Meta()
		assert.Equal(t, domain.AssetID(1), m.NextAssetID)
		assert.Equal(t, domain.GenesisHash, m.LastEventHash)
		assert.Equal(t, fixedNow, tx.Now())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_UpdateCommitsAndViewSeesIt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	putAsset(t, s, domain.Asset{ID: 1, Owner: "alice", ExternalAssetID: "PROP-1", Status: domain.AssetStatusPending, Value: amount.New(10)})
	putAsset(t, s, domain.Asset{ID: 2, Owner: "bob", ExternalAssetID: "PROP-2", Status: domain.AssetStatusVerified, Value: amount.New(20)})

	err := s.View(ctx, func(tx ports.LedgerReader) error {
		a, ok := tx.Asset(1)
		require.True(t, ok)
		assert.Equal(t, domain.AccountID("alice"), a.Owner)

		b, ok := tx.AssetByExternalID("PROP-2")
		require.True(t, ok)
		assert.Equal(t, domain.AssetID(2), b.ID)

		_, ok = tx.Asset(3)
		assert.False(t, ok)

		assert.Len(t, tx.AssetsByOwner("alice"), 1)
		assert.Len(t, tx.AssetsByStatus(domain.AssetStatusVerified), 1)
		assert.Len(t, tx.AllAssets(), 2)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_UpdateErrorLeavesNoTrace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Update(ctx, func(tx ports.LedgerTx) error {
		require.NoError(t, tx.PutAsset(domain.Asset{ID: 1, Owner: "alice", ExternalAssetID: "X", Status: domain.AssetStatusPending}))
		require.NoError(t, tx.PutBalance(domain.Balance{Account: "alice", Amount: amount.New(5)}))
		tx.Emit(domain.Event{Type: domain.EventAssetRegistered, Actor: "alice"})

		// own writes are visible inside the transaction
		_, ok := tx.Asset(1)
		assert.True(t, ok)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = s.View(ctx, func(tx ports.LedgerReader) error {
		_, ok := tx.Asset(1)
		assert.False(t, ok)
		assert.True(t, tx.Balance("alice").Amount.IsZero())
		assert.Empty(t, tx.Events(0, 0))
		assert.Equal(t, uint64(0), tx.Meta().EventSeq)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_CancelledContextIsNotCommitted(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := s.Update(ctx, func(tx ports.LedgerTx) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, apperror.ErrNotCommitted(nil))
}

func TestStore_DeadlineDuringUpdateIsNotCommitted(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	err := s.Update(ctx, func(tx ports.LedgerTx) error {
		require.NoError(t, tx.PutAsset(domain.Asset{ID: 1, Owner: "alice", ExternalAssetID: "X", Status: domain.AssetStatusPending}))
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, apperror.ErrNotCommitted(nil))

	empty, err := s.IsEmpty(context.Background())
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	putAsset(t, s, domain.Asset{ID: 1, Owner: "alice", ExternalAssetID: "X", Status: domain.AssetStatusPending})

	err := s.View(ctx, func(tx ports.LedgerReader) error {
		// a writer committing mid-read is not observed by this snapshot
		putAsset(t, s, domain.Asset{ID: 2, Owner: "bob", ExternalAssetID: "Y", Status: domain.AssetStatusPending})
		assert.Len(t, tx.AllAssets(), 1)
		return nil
	})
	require.NoError(t, err)

	err = s.View(ctx, func(tx ports.LedgerReader) error {
		assert.Len(t, tx.AllAssets(), 2)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	putAsset(t, s, domain.Asset{ID: 1, Owner: "alice", ExternalAssetID: "X", Status: domain.AssetStatusPending})

	_ = s.View(ctx, func(tx ports.LedgerReader) error {
		a, _ := tx.Asset(1)
		a.Status = domain.AssetStatusRedeemed
		return nil
	})

	_ = s.View(ctx, func(tx ports.LedgerReader) error {
		a, _ := tx.Asset(1)
		assert.Equal(t, domain.AssetStatusPending, a.Status)
		return nil
	})
}

func TestStore_NumericOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for _, id := range []domain.AssetID{300, 2, 129, 1} {
		putAsset(t, s, domain.Asset{ID: id, Owner: "alice", ExternalAssetID: fmt.Sprintf("EXT-%d", id), Status: domain.AssetStatusPending})
	}

	_ = s.View(ctx, func(tx ports.LedgerReader) error {
		var ids []domain.AssetID
		for _, a := range tx.AllAssets() {
			ids = append(ids, a.ID)
		}
		assert.Equal(t, []domain.AssetID{1, 2, 129, 300}, ids)
		return nil
	})
}

func TestStore_EventsAreSealedAndPublished(t *testing.T) {
	sink := &recordingSink{}
	s := newTestStore(t, WithSink(sink))
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		tx.Emit(domain.Event{Type: domain.EventAssetRegistered, Actor: "alice", AssetID: 1})
		tx.Emit(domain.Event{Type: domain.EventAssetVerified, Actor: "verifier", AssetID: 1})
		return nil
	}))
	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		tx.Emit(domain.Event{Type: domain.EventPaused, Actor: "admin"})
		return nil
	}))

	var events []domain.Event
	_ = s.View(ctx, func(tx ports.LedgerReader) error {
		events = tx.Events(0, 0)
		assert.Equal(t, uint64(3), tx.Meta().EventSeq)
		assert.Equal(t, events[2].Hash, tx.Meta().LastEventHash)

		tail := tx.Events(1, 1)
		require.Len(t, tail, 1)
		assert.Equal(t, uint64(2), tail[0].Seq)
		return nil
	})

	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, uint64(i+1), e.Seq)
		assert.Equal(t, fixedNow, e.CreatedAt)
		assert.NotEqual(t, uuid.Nil, e.ID)
	}
	require.NoError(t, domain.VerifyChain(domain.GenesisHash, events))

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, events, sink.events)
}

func TestStore_PutRolesEmptyDeletes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		return tx.PutRoles(domain.RoleGrant{Account: "admin", Roles: domain.NewRoleSet(domain.RoleAdmin)})
	}))
	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		assert.True(t, tx.Roles("admin").Has(domain.RoleAdmin))
		return tx.PutRoles(domain.RoleGrant{Account: "admin"})
	}))

	_ = s.View(ctx, func(tx ports.LedgerReader) error {
		assert.True(t, tx.Roles("admin").IsEmpty())
		assert.Empty(t, tx.RoleGrants())
		return nil
	})
}

func TestStore_AssetTypes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		require.NoError(t, tx.PutAssetType(domain.SupportedAssetType{Type: "REAL_ESTATE"}))
		return tx.PutAssetType(domain.SupportedAssetType{Type: "STOCK"})
	}))
	require.NoError(t, s.Update(ctx, func(tx ports.LedgerTx) error {
		require.NoError(t, tx.DeleteAssetType("STOCK"))
		return tx.DeleteAssetType("UNKNOWN")
	}))

	_ = s.View(ctx, func(tx ports.LedgerReader) error {
		assert.True(t, tx.HasAssetType("REAL_ESTATE"))
		assert.False(t, tx.HasAssetType("STOCK"))
		assert.Len(t, tx.AssetTypes(), 1)
		return nil
	})
}

func seedLedger(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.Update(context.Background(), func(tx ports.LedgerTx) error {
		require.NoError(t, tx.PutAsset(domain.Asset{ID: 1, Owner: "alice", ExternalAssetID: "PROP-1", Status: domain.AssetStatusTokenized, Value: amount.New(1000)}))
		require.NoError(t, tx.PutIssuance(domain.TokenIssuance{AssetID: 1, AmountIssued: amount.New(100), RemainingRedeemable: amount.New(100)}))
		require.NoError(t, tx.PutBalance(domain.Balance{Account: "alice", Amount: amount.New(100)}))
		require.NoError(t, tx.PutRoles(domain.RoleGrant{Account: "admin", Roles: domain.NewRoleSet(domain.RoleAdmin)}))
		require.NoError(t, tx.PutRedemption(domain.RedemptionRequest{ID: 1, Requester: "alice", AssetID: 1, TokenAmount: amount.New(10)}))
		m := tx.Meta()
		m.NextAssetID = 2
		m.NextRequestID = 2
		m.TotalSupply = amount.New(100)
		require.NoError(t, tx.PutMeta(m))
		tx.Emit(domain.Event{Type: domain.EventTokensMinted, Actor: "minter", AssetID: 1})
		return nil
	}))
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	seedLedger(t, src)
	ctx := context.Background()

	snap, err := src.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SnapshotVersion, snap.Version)
	assert.Len(t, snap.Assets, 1)
	assert.Len(t, snap.Events, 1)

	sink := &recordingSink{}
	dst := newTestStore(t, WithSink(sink))
	require.NoError(t, dst.Import(ctx, snap))

	again, err := dst.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, again)
	assert.Empty(t, sink.events, "import does not republish")

	assert.Error(t, dst.Import(ctx, snap), "second import into non-empty ledger")
}

func TestStore_ImportRejectsTamperedSnapshot(t *testing.T) {
	src := newTestStore(t)
	seedLedger(t, src)
	ctx := context.Background()

	t.Run("supply mismatch", func(t *testing.T) {
		snap, err := src.Export(ctx)
		require.NoError(t, err)
		snap.Meta.TotalSupply = amount.New(1)
		assert.Error(t, newTestStore(t).Import(ctx, snap))
	})

	t.Run("edited event", func(t *testing.T) {
		snap, err := src.Export(ctx)
		require.NoError(t, err)
		snap.Events[0].Actor = "mallory"
		assert.Error(t, newTestStore(t).Import(ctx, snap))
	})

	t.Run("wrong version", func(t *testing.T) {
		snap, err := src.Export(ctx)
		require.NoError(t, err)
		snap.Version = 99
		assert.Error(t, newTestStore(t).Import(ctx, snap))
	})
}

func TestStore_HealthCheck(t *testing.T) {
	s := newTestStore(t)
	var checker ports.HealthChecker = s

	assert.Equal(t, "ledger", checker.Name())
	assert.NoError(t, checker.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, checker.Ping(ctx))
}
