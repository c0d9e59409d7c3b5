// Package metrics exposes Prometheus counters for the tournament service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "volei"

// Save results.
const (
	SaveOK       = "ok"
	SaveConflict = "conflict"
	SaveError    = "error"
)

// Score entry results.
const (
	ScoreValid   = "valid"
	ScoreInvalid = "invalid"
	ScoreReset   = "reset"
)

// Recorder owns the service metrics and the registry they live in.
type Recorder struct {
	registry *prometheus.Registry

	fixturesGenerated *prometheus.CounterVec
	scoreEntries      *prometheus.CounterVec
	phaseTransitions  *prometheus.CounterVec
	documentSaves     *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

type Option func(*Recorder)

// WithRegistry registers the metrics on registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(r *Recorder) {
		if registry != nil {
			r.registry = registry
		}
	}
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}
	for _, opt := range opts {
		opt(r)
	}

	auto := promauto.With(r.registry)
	r.fixturesGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fixtures_generated_total",
		Help:      "Matches created by the bracket engine, by stage kind",
	}, []string{"stage"})
	r.scoreEntries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_entries_total",
		Help:      "Score submissions by result",
	}, []string{"result"})
	r.phaseTransitions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "phase_transitions_total",
		Help:      "Bracket progression requests by phase and outcome",
	}, []string{"phase", "outcome"})
	r.documentSaves = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_saves_total",
		Help:      "Document save attempts by result",
	}, []string{"result"})
	r.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method and status code",
	}, []string{"method", "code"})
	r.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "code"})

	return r
}

func (r *Recorder) FixturesGenerated(stage string, n int) {
	if n <= 0 {
		return
	}
	r.fixturesGenerated.WithLabelValues(stage).Add(float64(n))
}

func (r *Recorder) ScoreEntry(result string) {
	r.scoreEntries.WithLabelValues(result).Inc()
}

func (r *Recorder) PhaseTransition(phase, outcome string) {
	r.phaseTransitions.WithLabelValues(phase, outcome).Inc()
}

func (r *Recorder) DocumentSave(result string) {
	r.documentSaves.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware counts requests and observes their latency.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(r.httpDuration,
		promhttp.InstrumentHandlerCounter(r.httpRequests, next))
}

// Registry is exposed for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
