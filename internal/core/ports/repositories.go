package ports

import (
	"context"

	"rwa-ledger/internal/core/domain"
)

// EventRepository is the durable journal of committed ledger events.
type EventRepository interface {
	Append(ctx context.Context, events []domain.Event) error
	ListAfter(ctx context.Context, after uint64, limit int) ([]domain.Event, error)
	LastSeq(ctx context.Context) (uint64, error)
}

// SnapshotRepository stores ledger checkpoints.
type SnapshotRepository interface {
	Save(ctx context.Context, snap *domain.LedgerSnapshot) error
	Latest(ctx context.Context) (*domain.LedgerSnapshot, error) // nil, nil when none saved
}
