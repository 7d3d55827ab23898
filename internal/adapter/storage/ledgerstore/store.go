package ledgerstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"

	"github.com/hashicorp/go-memdb"
	"github.com/rs/zerolog"
)

// Store is the in-process ledger state, held in go-memdb. Writers are
// serialized; readers work on immutable radix-tree snapshots and never block.
type Store struct {
	db    *memdb.MemDB
	clock func() time.Time
	log   zerolog.Logger

	// writeMu spans commit and sink fan-out so sinks observe events in
	// sequence order.
	writeMu sync.Mutex
	sinks   []ports.EventSink
}

var _ ports.LedgerStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the transaction timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithSink registers a post-commit event sink.
func WithSink(sink ports.EventSink) Option {
	return func(s *Store) { s.sinks = append(s.sinks, sink) }
}

// New creates an empty ledger store.
func New(log zerolog.Logger, opts ...Option) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	s := &Store{
		db:    db,
		clock: time.Now,
		log:   log.With().Str("component", "ledger_store").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	seed := db.Txn(true)
	if err := seed.Insert(tableMeta, &metaRow{Key: metaKey, Meta: domain.NewLedgerMeta()}); err != nil {
		seed.Abort()
		return nil, fmt.Errorf("initializing ledger meta: %w", err)
	}
	seed.Commit()

	return s, nil
}

// Subscribe adds a post-commit event sink.
func (s *Store) Subscribe(sink ports.EventSink) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.sinks = append(s.sinks, sink)
}

// Update runs fn in the single write transaction. An error from fn, or a
// context that ends before commit, discards every staged write.
func (s *Store) Update(ctx context.Context, fn func(tx ports.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return apperror.ErrNotCommitted(err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	mtx := s.db.Txn(true)
	defer mtx.Abort() // no-op after Commit

	tx := &txn{mtx: mtx, now: s.clock().UTC()}
	if err := fn(tx); err != nil {
		return err
	}

	events, err := tx.seal()
	if err != nil {
		return apperror.InternalError(fmt.Errorf("sealing events: %w", err))
	}

	if err := ctx.Err(); err != nil {
		return apperror.ErrNotCommitted(err)
	}
	mtx.Commit()

	if len(events) > 0 {
		pubCtx := context.WithoutCancel(ctx)
		for _, sink := range s.sinks {
			sink.Publish(pubCtx, events)
		}
	}
	return nil
}

// View runs fn against the latest committed snapshot.
func (s *Store) View(ctx context.Context, fn func(tx ports.LedgerReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mtx := s.db.Txn(false)
	defer mtx.Abort()
	return fn(&txn{mtx: mtx, now: s.clock().UTC()})
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(ctx context.Context) error {
	return s.View(ctx, func(ports.LedgerReader) error { return nil })
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "ledger" }

// IsEmpty reports whether nothing has ever been committed.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	empty := false
	err := s.View(ctx, func(tx ports.LedgerReader) error {
		empty = isEmpty(tx)
		return nil
	})
	return empty, err
}

func isEmpty(tx ports.LedgerReader) bool {
	return tx.Meta().EventSeq == 0 &&
		len(tx.AllAssets()) == 0 &&
		len(tx.RoleGrants()) == 0 &&
		len(tx.AssetTypes()) == 0 &&
		len(tx.Balances()) == 0
}

// Export captures every table from one snapshot.
func (s *Store) Export(ctx context.Context) (*domain.LedgerSnapshot, error) {
	var snap *domain.LedgerSnapshot
	err := s.View(ctx, func(tx ports.LedgerReader) error {
		snap = &domain.LedgerSnapshot{
			Version:    domain.SnapshotVersion,
			TakenAt:    tx.Now(),
			Meta:       tx.Meta(),
			Assets:     tx.AllAssets(),
			Issuances:  tx.Issuances(),
			Requests:   tx.Redemptions(),
			Balances:   tx.Balances(),
			Identities: tx.Identities(),
			Roles:      tx.RoleGrants(),
			AssetTypes: tx.AssetTypes(),
			Verifiers:  tx.Verifiers(),
			Events:     tx.Events(0, 0),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Import loads snap into an empty store. The event chain and the supply
// total are checked before anything is written; sinks are not notified.
func (s *Store) Import(ctx context.Context, snap *domain.LedgerSnapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	if snap.Version != domain.SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if err := verifySnapshot(snap); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return apperror.ErrNotCommitted(err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	mtx := s.db.Txn(true)
	defer mtx.Abort()
	tx := &txn{mtx: mtx, now: s.clock().UTC()}

	if !isEmpty(tx) {
		return fmt.Errorf("import into non-empty ledger")
	}

	for i := range snap.Assets {
		if err := tx.PutAsset(snap.Assets[i]); err != nil {
			return err
		}
	}
	for i := range snap.Issuances {
		if err := tx.PutIssuance(snap.Issuances[i]); err != nil {
			return err
		}
	}
	for i := range snap.Requests {
		if err := tx.PutRedemption(snap.Requests[i]); err != nil {
			return err
		}
	}
	for i := range snap.Balances {
		if err := tx.PutBalance(snap.Balances[i]); err != nil {
			return err
		}
	}
	for i := range snap.Identities {
		if err := tx.PutIdentity(snap.Identities[i]); err != nil {
			return err
		}
	}
	for i := range snap.Roles {
		if err := tx.PutRoles(snap.Roles[i]); err != nil {
			return err
		}
	}
	for i := range snap.AssetTypes {
		if err := tx.PutAssetType(snap.AssetTypes[i]); err != nil {
			return err
		}
	}
	for i := range snap.Verifiers {
		if err := tx.PutVerifier(snap.Verifiers[i]); err != nil {
			return err
		}
	}
	for i := range snap.Events {
		ev := snap.Events[i]
		if err := tx.insert(tableEvents, &ev); err != nil {
			return err
		}
	}
	if err := tx.PutMeta(snap.Meta); err != nil {
		return err
	}

	mtx.Commit()

	s.log.Info().
		Int("assets", len(snap.Assets)).
		Uint64("event_seq", snap.Meta.EventSeq).
		Msg("Ledger restored from snapshot")
	return nil
}

func verifySnapshot(snap *domain.LedgerSnapshot) error {
	if err := domain.VerifyChain(domain.GenesisHash, snap.Events); err != nil {
		return err
	}
	if n := len(snap.Events); n > 0 {
		last := snap.Events[n-1]
		if last.Seq != snap.Meta.EventSeq || last.Hash != snap.Meta.LastEventHash {
			return fmt.Errorf("meta does not match last event %d", last.Seq)
		}
	} else if snap.Meta.EventSeq != 0 {
		return fmt.Errorf("meta event seq %d with no events", snap.Meta.EventSeq)
	}

	sum, err := sumBalances(snap.Balances)
	if err != nil {
		return err
	}
	if !sum.Equal(snap.Meta.TotalSupply) {
		return fmt.Errorf("total supply %s does not equal balance sum %s", snap.Meta.TotalSupply, sum)
	}
	return nil
}

func sumBalances(balances []domain.Balance) (amount.Amount, error) {
	sum := amount.Zero()
	for _, b := range balances {
		next, err := sum.Add(b.Amount)
		if err != nil {
			return amount.Zero(), fmt.Errorf("balance of %s: %w", b.Account, err)
		}
		sum = next
	}
	return sum, nil
}
