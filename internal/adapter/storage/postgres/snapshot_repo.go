package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rwa-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SnapshotRepo implements ports.SnapshotRepository.
type SnapshotRepo struct {
	pool Pool
	keep int
}

// NewSnapshotRepo creates a SnapshotRepo that retains the newest keep
// checkpoints; keep <= 0 retains all of them.
func NewSnapshotRepo(pool Pool, keep int) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, keep: keep}
}

// Save stores snap and prunes checkpoints beyond the retention limit.
func (r *SnapshotRepo) Save(ctx context.Context, snap *domain.LedgerSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO ledger_snapshots (event_seq, taken_at, payload) VALUES ($1, $2, $3)`,
		int64(snap.Meta.EventSeq), snap.TakenAt, payload,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	if r.keep > 0 {
		_, err = tx.Exec(ctx,
			`DELETE FROM ledger_snapshots WHERE id NOT IN (SELECT id FROM ledger_snapshots ORDER BY id DESC LIMIT $1)`,
			r.keep,
		)
		if err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot tx: %w", err)
	}
	return nil
}

// Latest returns the newest checkpoint, or nil when none has been saved.
func (r *SnapshotRepo) Latest(ctx context.Context) (*domain.LedgerSnapshot, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM ledger_snapshots ORDER BY id DESC LIMIT 1`).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	var snap domain.LedgerSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
