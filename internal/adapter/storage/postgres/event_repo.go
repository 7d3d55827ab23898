package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rwa-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository: the durable journal of
// committed ledger events.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append writes a batch in one transaction. Events already journaled with
// the same hash are skipped, so a retried batch is harmless. A sequence
// number already journaled with a different hash fails the whole batch with
// domain.ErrJournalDiverged.
func (r *EventRepo) Append(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin journal tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `INSERT INTO ledger_events (seq, id, type, actor, asset_id, prev_hash, hash, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (seq) DO NOTHING`

	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode event %d: %w", e.Seq, err)
		}
		tag, err := tx.Exec(ctx, query,
			int64(e.Seq), e.ID, string(e.Type), e.Actor.String(), int64(e.AssetID),
			e.PrevHash, e.Hash, payload, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", e.Seq, err)
		}
		if tag.RowsAffected() > 0 {
			continue
		}

		var existing string
		err = tx.QueryRow(ctx, `SELECT hash FROM ledger_events WHERE seq = $1`, int64(e.Seq)).Scan(&existing)
		if err != nil {
			return fmt.Errorf("read journaled event %d: %w", e.Seq, err)
		}
		if existing != e.Hash {
			return fmt.Errorf("%w: seq %d journaled as %s, got %s",
				domain.ErrJournalDiverged, e.Seq, existing, e.Hash)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit journal tx: %w", err)
	}
	return nil
}

// ListAfter returns journaled events with seq > after, oldest first.
// limit <= 0 returns everything.
func (r *EventRepo) ListAfter(ctx context.Context, after uint64, limit int) ([]domain.Event, error) {
	query := `SELECT payload FROM ledger_events WHERE seq > $1 ORDER BY seq ASC`
	args := []any{int64(after)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		var e domain.Event
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// LastSeq returns the highest journaled sequence number, 0 when empty.
func (r *EventRepo) LastSeq(ctx context.Context) (uint64, error) {
	var seq int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(MAX(seq), 0) FROM ledger_events`).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("last event seq: %w", err)
	}
	return uint64(seq), nil
}
