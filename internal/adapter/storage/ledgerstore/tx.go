package ledgerstore

import (
	"fmt"
	"time"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

// txn adapts a memdb transaction to ports.LedgerTx. Rows are stored as
// pointers and never mutated in place; every read hands out a copy and every
// write inserts a fresh value.
type txn struct {
	mtx     *memdb.Txn
	now     time.Time
	pending []domain.Event
}

var _ ports.LedgerTx = (*txn)(nil)

func (t *txn) Now() time.Time { return t.now }

func (t *txn) first(table string, args ...interface{}) interface{} {
	raw, err := t.mtx.First(table, indexID, args...)
	if err != nil {
		return nil
	}
	return raw
}

func (t *txn) firstBy(table, index string, args ...interface{}) interface{} {
	raw, err := t.mtx.First(table, index, args...)
	if err != nil {
		return nil
	}
	return raw
}

// each calls fn for every row matched by index and args, in index order.
func (t *txn) each(table, index string, fn func(raw interface{}), args ...interface{}) {
	it, err := t.mtx.Get(table, index, args...)
	if err != nil {
		return
	}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		fn(raw)
	}
}

func (t *txn) insert(table string, obj interface{}) error {
	if err := t.mtx.Insert(table, obj); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// ---- meta ----

func (t *txn) Meta() domain.LedgerMeta {
	if raw := t.first(tableMeta, metaKey); raw != nil {
		return raw.(*metaRow).Meta
	}
	return domain.NewLedgerMeta()
}

func (t *txn) PutMeta(m domain.LedgerMeta) error {
	return t.insert(tableMeta, &metaRow{Key: metaKey, Meta: m})
}

// ---- assets ----

func (t *txn) Asset(id domain.AssetID) (*domain.Asset, bool) {
	raw := t.first(tableAssets, id)
	if raw == nil {
		return nil, false
	}
	a := *raw.(*domain.Asset)
	return &a, true
}

func (t *txn) AssetByExternalID(externalID string) (*domain.Asset, bool) {
	raw := t.firstBy(tableAssets, "external", externalID)
	if raw == nil {
		return nil, false
	}
	a := *raw.(*domain.Asset)
	return &a, true
}

func (t *txn) collectAssets(index string, args ...interface{}) []domain.Asset {
	out := []domain.Asset{}
	t.each(tableAssets, index, func(raw interface{}) {
		out = append(out, *raw.(*domain.Asset))
	}, args...)
	return out
}

func (t *txn) AssetsByOwner(owner domain.AccountID) []domain.Asset {
	return t.collectAssets("owner", string(owner))
}

func (t *txn) AssetsByStatus(status domain.AssetStatus) []domain.Asset {
	return t.collectAssets("status", string(status))
}

func (t *txn) AllAssets() []domain.Asset {
	return t.collectAssets(indexID)
}

func (t *txn) PutAsset(a domain.Asset) error {
	return t.insert(tableAssets, &a)
}

// ---- issuances ----

func (t *txn) Issuance(id domain.AssetID) (*domain.TokenIssuance, bool) {
	raw := t.first(tableIssuances, id)
	if raw == nil {
		return nil, false
	}
	i := *raw.(*domain.TokenIssuance)
	return &i, true
}

func (t *txn) Issuances() []domain.TokenIssuance {
	out := []domain.TokenIssuance{}
	t.each(tableIssuances, indexID, func(raw interface{}) {
		out = append(out, *raw.(*domain.TokenIssuance))
	})
	return out
}

func (t *txn) PutIssuance(i domain.TokenIssuance) error {
	return t.insert(tableIssuances, &i)
}

// ---- redemptions ----

func (t *txn) Redemption(id domain.RequestID) (*domain.RedemptionRequest, bool) {
	raw := t.first(tableRedemptions, id)
	if raw == nil {
		return nil, false
	}
	r := *raw.(*domain.RedemptionRequest)
	return &r, true
}

func (t *txn) Redemptions() []domain.RedemptionRequest {
	out := []domain.RedemptionRequest{}
	t.each(tableRedemptions, indexID, func(raw interface{}) {
		out = append(out, *raw.(*domain.RedemptionRequest))
	})
	return out
}

func (t *txn) RedemptionsByRequester(account domain.AccountID) []domain.RedemptionRequest {
	out := []domain.RedemptionRequest{}
	t.each(tableRedemptions, "requester", func(raw interface{}) {
		out = append(out, *raw.(*domain.RedemptionRequest))
	}, string(account))
	return out
}

func (t *txn) PutRedemption(r domain.RedemptionRequest) error {
	return t.insert(tableRedemptions, &r)
}

// ---- balances ----

func (t *txn) Balance(account domain.AccountID) domain.Balance {
	if raw := t.first(tableBalances, string(account)); raw != nil {
		return *raw.(*domain.Balance)
	}
	return domain.Balance{Account: account}
}

func (t *txn) Balances() []domain.Balance {
	out := []domain.Balance{}
	t.each(tableBalances, indexID, func(raw interface{}) {
		out = append(out, *raw.(*domain.Balance))
	})
	return out
}

func (t *txn) PutBalance(b domain.Balance) error {
	return t.insert(tableBalances, &b)
}

// ---- identities ----

func (t *txn) Identity(account domain.AccountID) (*domain.IdentityRecord, bool) {
	raw := t.first(tableIdentities, string(account))
	if raw == nil {
		return nil, false
	}
	r := *raw.(*domain.IdentityRecord)
	return &r, true
}

func (t *txn) Identities() []domain.IdentityRecord {
	out := []domain.IdentityRecord{}
	t.each(tableIdentities, indexID, func(raw interface{}) {
		out = append(out, *raw.(*domain.IdentityRecord))
	})
	return out
}

func (t *txn) PutIdentity(r domain.IdentityRecord) error {
	return t.insert(tableIdentities, &r)
}

// ---- roles ----

func (t *txn) Roles(account domain.AccountID) domain.RoleSet {
	if raw := t.first(tableRoles, string(account)); raw != nil {
		return raw.(*domain.RoleGrant).Roles
	}
	return 0
}

func (t *txn) RoleGrants() []domain.RoleGrant {
	out := []domain.RoleGrant{}
	t.each(tableRoles, indexID, func(raw interface{}) {
		out = append(out, *raw.(*domain.RoleGrant))
	})
	return out
}

// PutRoles replaces the grant of g.Account. An empty set removes the row.
func (t *txn) PutRoles(g domain.RoleGrant) error {
	if g.Roles.IsEmpty() {
		raw := t.first(tableRoles, string(g.Account))
		if raw == nil {
			return nil
		}
		if err := t.mtx.Delete(tableRoles, raw); err != nil {
			return fmt.Errorf("delete %s: %w", tableRoles, err)
		}
		return nil
	}
	return t.insert(tableRoles, &g)
}

// ---- asset types ----

func (t *txn) HasAssetType(at domain.AssetType) bool {
	return t.first(tableAssetTypes, string(at)) != nil
}

func (t *txn) AssetTypes() []domain.SupportedAssetType {
	out := []domain.SupportedAssetType{}
	t.each(tableAssetTypes, indexID, func(raw interface{}) {
		out = append(out, *raw.(*domain.SupportedAssetType))
	})
	return out
}

func (t *txn) PutAssetType(at domain.SupportedAssetType) error {
	return t.insert(tableAssetTypes, &at)
}

func (t *txn) DeleteAssetType(at domain.AssetType) error {
	raw := t.first(tableAssetTypes, string(at))
	if raw == nil {
		return nil
	}
	if err := t.mtx.Delete(tableAssetTypes, raw); err != nil {
		return fmt.Errorf("delete %s: %w", tableAssetTypes, err)
	}
	return nil
}

// ---- verifiers ----

func (t *txn) Verifier(account domain.AccountID) (*domain.VerifierInfo, bool) {
	raw := t.first(tableVerifiers, string(account))
	if raw == nil {
		return nil, false
	}
	v := *raw.(*domain.VerifierInfo)
	return &v, true
}

func (t *txn) Verifiers() []domain.VerifierInfo {
	out := []domain.VerifierInfo{}
	t.each(tableVerifiers, indexID, func(raw interface{}) {
		out = append(out, *raw.(*domain.VerifierInfo))
	})
	return out
}

func (t *txn) PutVerifier(v domain.VerifierInfo) error {
	return t.insert(tableVerifiers, &v)
}

// ---- events ----

func (t *txn) Events(after uint64, limit int) []domain.Event {
	out := []domain.Event{}
	it, err := t.mtx.LowerBound(tableEvents, indexID, after+1)
	if err != nil {
		return out
	}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*domain.Event))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func (t *txn) Emit(e domain.Event) {
	t.pending = append(t.pending, e)
}

// seal numbers, timestamps and hash-links the staged events, appends them
// to the events table and advances the meta counters.
func (t *txn) seal() ([]domain.Event, error) {
	if len(t.pending) == 0 {
		return nil, nil
	}
	meta := t.Meta()
	sealed := make([]domain.Event, 0, len(t.pending))
	for _, e := range t.pending {
		meta.EventSeq++
		e.Seq = meta.EventSeq
		e.ID = uuid.New()
		e.CreatedAt = t.now
		if err := e.Seal(meta.LastEventHash); err != nil {
			return nil, err
		}
		meta.LastEventHash = e.Hash
		ev := e
		if err := t.insert(tableEvents, &ev); err != nil {
			return nil, err
		}
		sealed = append(sealed, e)
	}
	if err := t.PutMeta(meta); err != nil {
		return nil, err
	}
	t.pending = nil
	return sealed, nil
}
