package ledgerstore

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"rwa-ledger/internal/core/domain"

	"github.com/hashicorp/go-memdb"
)

const (
	tableMeta        = "meta"
	tableAssets      = "assets"
	tableIssuances   = "issuances"
	tableRedemptions = "redemptions"
	tableBalances    = "balances"
	tableIdentities  = "identities"
	tableRoles       = "roles"
	tableAssetTypes  = "asset_types"
	tableVerifiers   = "verifiers"
	tableEvents      = "events"

	indexID = "id"

	metaKey = "ledger"
)

// metaRow wraps the singleton ledger counters so they can live in a table.
type metaRow struct {
	Key  string
	Meta domain.LedgerMeta
}

// uint64Index indexes an unsigned integer field big-endian, so iteration
// order matches numeric order and LowerBound seeks by value.
type uint64Index struct {
	Field string
}

func (u *uint64Index) FromObject(obj interface{}) (bool, []byte, error) {
	v := reflect.Indirect(reflect.ValueOf(obj))
	fv := v.FieldByName(u.Field)
	if !fv.IsValid() {
		return false, nil, fmt.Errorf("field %q for object %#v invalid", u.Field, obj)
	}
	switch fv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return false, nil, fmt.Errorf("field %q is %v, want unsigned integer", u.Field, fv.Kind())
	}
	return true, encodeUint(fv.Uint()), nil
}

func (u *uint64Index) FromArgs(args ...interface{}) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("must provide only a single argument")
	}
	v := reflect.ValueOf(args[0])
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return encodeUint(v.Uint()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			return nil, fmt.Errorf("negative argument %d", v.Int())
		}
		return encodeUint(uint64(v.Int())), nil
	}
	return nil, fmt.Errorf("argument is %v, want unsigned integer", v.Kind())
}

func encodeUint(n uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	return buf
}

func stringID(field string) *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:    indexID,
		Unique:  true,
		Indexer: &memdb.StringFieldIndex{Field: field},
	}
}

func uintID(field string) *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:    indexID,
		Unique:  true,
		Indexer: &uint64Index{Field: field},
	}
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableMeta: {
				Name:    tableMeta,
				Indexes: map[string]*memdb.IndexSchema{indexID: stringID("Key")},
			},
			tableAssets: {
				Name: tableAssets,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: uintID("ID"),
					// Uniqueness is checked by the registry before insert.
					"external": {
						Name:    "external",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ExternalAssetID"},
					},
					"owner": {
						Name:    "owner",
						Indexer: &memdb.StringFieldIndex{Field: "Owner"},
					},
					"status": {
						Name:    "status",
						Indexer: &memdb.StringFieldIndex{Field: "Status"},
					},
				},
			},
			tableIssuances: {
				Name:    tableIssuances,
				Indexes: map[string]*memdb.IndexSchema{indexID: uintID("AssetID")},
			},
			tableRedemptions: {
				Name: tableRedemptions,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: uintID("ID"),
					"requester": {
						Name:    "requester",
						Indexer: &memdb.StringFieldIndex{Field: "Requester"},
					},
				},
			},
			tableBalances: {
				Name:    tableBalances,
				Indexes: map[string]*memdb.IndexSchema{indexID: stringID("Account")},
			},
			tableIdentities: {
				Name:    tableIdentities,
				Indexes: map[string]*memdb.IndexSchema{indexID: stringID("Account")},
			},
			tableRoles: {
				Name:    tableRoles,
				Indexes: map[string]*memdb.IndexSchema{indexID: stringID("Account")},
			},
			tableAssetTypes: {
				Name:    tableAssetTypes,
				Indexes: map[string]*memdb.IndexSchema{indexID: stringID("Type")},
			},
			tableVerifiers: {
				Name:    tableVerifiers,
				Indexes: map[string]*memdb.IndexSchema{indexID: stringID("Account")},
			},
			tableEvents: {
				Name:    tableEvents,
				Indexes: map[string]*memdb.IndexSchema{indexID: uintID("Seq")},
			},
		},
	}
}
