package service

import (
	"context"
	"fmt"
	"time"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/internal/metrics"

	"github.com/rs/zerolog"
)

// Snapshotter exports and restores the whole ledger state.
type Snapshotter interface {
	Export(ctx context.Context) (*domain.LedgerSnapshot, error)
	Import(ctx context.Context, snap *domain.LedgerSnapshot) error
	IsEmpty(ctx context.Context) (bool, error)
}

// CheckpointService periodically saves ledger snapshots and restores the
// latest one on start. With a journal, a restore is refused unless the
// snapshot and the journal agree on the event chain.
type CheckpointService struct {
	ledger   Snapshotter
	repo     ports.SnapshotRepository
	journal  ports.EventRepository
	metrics  *metrics.Metrics
	log      zerolog.Logger
	interval time.Duration

	lastSeq uint64
}

// NewCheckpointService creates a new CheckpointService.
// journal may be nil.
func NewCheckpointService(ledger Snapshotter, repo ports.SnapshotRepository, journal ports.EventRepository, m *metrics.Metrics, interval time.Duration, log zerolog.Logger) *CheckpointService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CheckpointService{ledger: ledger, repo: repo, journal: journal, metrics: m, interval: interval, log: log}
}

// Restore loads the latest checkpoint into an empty ledger. It reports
// whether anything was restored.
func (s *CheckpointService) Restore(ctx context.Context) (bool, error) {
	empty, err := s.ledger.IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("check ledger: %w", err)
	}
	if !empty {
		return false, nil
	}
	snap, err := s.repo.Latest(ctx)
	if err != nil {
		return false, fmt.Errorf("load checkpoint: %w", err)
	}
	if err := s.reconcileJournal(ctx, snap); err != nil {
		return false, err
	}
	if snap == nil {
		s.log.Info().Msg("checkpoint: none saved, starting from an empty ledger")
		return false, nil
	}
	if err := s.ledger.Import(ctx, snap); err != nil {
		return false, fmt.Errorf("restore checkpoint: %w", err)
	}
	s.lastSeq = snap.Meta.EventSeq
	s.log.Info().
		Uint64("event_seq", snap.Meta.EventSeq).
		Time("taken_at", snap.TakenAt).
		Msg("checkpoint: ledger restored")
	return true, nil
}

// reconcileJournal compares the journal head with the ledger state about to
// be restored (nil snap means an empty ledger). A journal that is ahead or
// holds a different head event cannot be continued without reusing sequence
// numbers. A journal that is behind is backfilled from the snapshot.
func (s *CheckpointService) reconcileJournal(ctx context.Context, snap *domain.LedgerSnapshot) error {
	if s.journal == nil {
		return nil
	}
	meta := domain.NewLedgerMeta()
	var events []domain.Event
	if snap != nil {
		meta = snap.Meta
		events = snap.Events
	}

	journalSeq, err := s.journal.LastSeq(ctx)
	if err != nil {
		return fmt.Errorf("read journal head: %w", err)
	}

	switch {
	case journalSeq > meta.EventSeq:
		return fmt.Errorf("%w: journal at seq %d, checkpoint at seq %d",
			domain.ErrJournalDiverged, journalSeq, meta.EventSeq)

	case journalSeq == 0:
		// nothing journaled yet

	default:
		head, err := s.journal.ListAfter(ctx, journalSeq-1, 1)
		if err != nil {
			return fmt.Errorf("read journal head: %w", err)
		}
		want := meta.LastEventHash
		if journalSeq < meta.EventSeq {
			want = ""
			for _, e := range events {
				if e.Seq == journalSeq {
					want = e.Hash
					break
				}
			}
		}
		if len(head) != 1 || head[0].Hash != want {
			return fmt.Errorf("%w: journal event %d does not match the checkpoint",
				domain.ErrJournalDiverged, journalSeq)
		}
	}

	if journalSeq == meta.EventSeq {
		return nil
	}
	var missing []domain.Event
	for _, e := range events {
		if e.Seq > journalSeq {
			missing = append(missing, e)
		}
	}
	if err := s.journal.Append(ctx, missing); err != nil {
		return fmt.Errorf("backfill journal: %w", err)
	}
	s.log.Info().
		Uint64("from_seq", journalSeq+1).
		Uint64("to_seq", meta.EventSeq).
		Msg("checkpoint: journal backfilled from snapshot")
	return nil
}

// Save writes a checkpoint when the ledger has moved since the last one.
func (s *CheckpointService) Save(ctx context.Context) error {
	snap, err := s.ledger.Export(ctx)
	if err != nil {
		s.metrics.IncrementCheckpoint("failed")
		return fmt.Errorf("export ledger: %w", err)
	}
	if snap.Meta.EventSeq == s.lastSeq {
		s.metrics.IncrementCheckpoint("skipped")
		return nil
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		s.metrics.IncrementCheckpoint("failed")
		return fmt.Errorf("save checkpoint: %w", err)
	}
	s.lastSeq = snap.Meta.EventSeq
	s.metrics.IncrementCheckpoint("saved")
	s.log.Info().Uint64("event_seq", snap.Meta.EventSeq).Msg("checkpoint: saved")
	return nil
}

// Run saves a checkpoint every interval until ctx is done, then saves a
// final one.
func (s *CheckpointService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if err := s.Save(context.WithoutCancel(ctx)); err != nil {
				s.log.Error().Err(err).Msg("checkpoint: final save failed")
			}
			return
		case <-ticker.C:
			if err := s.Save(ctx); err != nil {
				s.log.Error().Err(err).Msg("checkpoint: periodic save failed")
			}
		}
	}
}
