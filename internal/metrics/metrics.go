package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the ledger service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Committed ledger events by type
	EventsCommitted *prometheus.CounterVec

	// Latest committed event sequence number
	EventSeq prometheus.Gauge

	// Journal writes that failed and were dropped
	JournalFailures prometheus.Counter

	// Checkpoints saved, by result
	Checkpoints *prometheus.CounterVec

	// HTTP request latency by route, method and status
	RequestLatency *prometheus.HistogramVec

	// Application errors returned to callers, by code
	Errors *prometheus.CounterVec
}

// New registers the ledger metrics with reg. Pass prometheus.DefaultRegisterer
// in production and prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EventsCommitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rwa_ledger_events_total",
			Help: "Total committed ledger events by type",
		}, []string{"type"}),

		EventSeq: f.NewGauge(prometheus.GaugeOpts{
			Name: "rwa_ledger_event_seq",
			Help: "Sequence number of the latest committed ledger event",
		}),

		JournalFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "rwa_ledger_journal_failures_total",
			Help: "Total event batches that could not be written to the journal",
		}),

		Checkpoints: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rwa_ledger_checkpoints_total",
			Help: "Total ledger checkpoints by result",
		}, []string{"result"}), // result: "saved", "skipped", "failed"

		RequestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rwa_ledger_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method", "status"}),

		Errors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rwa_ledger_errors_total",
			Help: "Total application errors returned to callers by code",
		}, []string{"code"}),
	}
}

// ObserveEvent records one committed event.
func (m *Metrics) ObserveEvent(eventType string, seq uint64) {
	if m != nil {
		m.EventsCommitted.WithLabelValues(eventType).Inc()
		m.EventSeq.Set(float64(seq))
	}
}

func (m *Metrics) IncrementJournalFailures() {
	if m != nil {
		m.JournalFailures.Inc()
	}
}

func (m *Metrics) IncrementCheckpoint(result string) {
	if m != nil {
		m.Checkpoints.WithLabelValues(result).Inc()
	}
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementError(code string) {
	if m != nil {
		m.Errors.WithLabelValues(code).Inc()
	}
}
