package service

import (
	"context"
	"sync"
	"time"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/internal/metrics"

	"github.com/rs/zerolog"
)

var journalRetryIntervals = []time.Duration{
	100 * time.Millisecond,
	500 * time.Millisecond,
	2 * time.Second,
}

// EventPublisher receives committed ledger events. It logs and counts each
// event inline and, when a journal is configured, appends batches to it from
// a single background worker so journal order matches commit order.
type EventPublisher struct {
	journal ports.EventRepository
	metrics *metrics.Metrics
	log     zerolog.Logger
	retries []time.Duration

	mu     sync.Mutex
	queue  chan []domain.Event
	closed bool
	done   chan struct{}
}

// NewEventPublisher creates an EventPublisher. journal may be nil.
func NewEventPublisher(journal ports.EventRepository, m *metrics.Metrics, log zerolog.Logger, buffer int) *EventPublisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &EventPublisher{
		journal: journal,
		metrics: m,
		log:     log,
		retries: journalRetryIntervals,
		queue:   make(chan []domain.Event, buffer),
		done:    make(chan struct{}),
	}
}

// Publish implements ports.EventSink. It never blocks on the journal; a
// batch that does not fit in the buffer is dropped and counted.
func (p *EventPublisher) Publish(ctx context.Context, events []domain.Event) {
	for _, e := range events {
		p.metrics.ObserveEvent(string(e.Type), e.Seq)
		p.log.Debug().
			Uint64("seq", e.Seq).
			Str("type", string(e.Type)).
			Str("actor", e.Actor.String()).
			Uint64("asset_id", uint64(e.AssetID)).
			Msg("ledger event")
	}
	if p.journal == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.log.Warn().Int("events", len(events)).Msg("journal: publisher closed, dropping batch")
		p.metrics.IncrementJournalFailures()
		return
	}
	select {
	case p.queue <- events:
	default:
		p.log.Error().Uint64("first_seq", events[0].Seq).Int("events", len(events)).Msg("journal: buffer full, dropping batch")
		p.metrics.IncrementJournalFailures()
	}
}

// Start runs the journal worker until Close is called.
func (p *EventPublisher) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for batch := range p.queue {
			p.appendWithRetries(ctx, batch)
		}
	}()
}

// Close stops accepting batches and waits for queued ones to be journaled.
func (p *EventPublisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()
	<-p.done
}

func (p *EventPublisher) appendWithRetries(ctx context.Context, batch []domain.Event) {
	for attempt := 0; attempt <= len(p.retries); attempt++ {
		if attempt > 0 {
			time.Sleep(p.retries[attempt-1])
		}
		err := p.journal.Append(ctx, batch)
		if err == nil {
			return
		}
		p.log.Warn().Err(err).
			Uint64("first_seq", batch[0].Seq).
			Int("attempt", attempt+1).
			Msg("journal: append failed")
	}
	p.metrics.IncrementJournalFailures()
	p.log.Error().Uint64("first_seq", batch[0].Seq).Int("events", len(batch)).Msg("journal: all retry attempts exhausted")
}
