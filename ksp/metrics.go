package ksp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes recorded in yen_runs_total.
const (
	outcomeComplete = "complete" // k paths found
	outcomeShort    = "short"    // fewer than k paths exist
	outcomeNoPath   = "no_path"  // target unreachable
	outcomeError    = "error"    // validation, oracle or restore failure
)

// Metrics holds the Prometheus collectors updated by Yen.
//
// Metrics exposed (namespace "kpaths"):
//
//  1. yen_runs_total (counter): Yen calls. Labels: outcome.
//  2. spur_searches_total (counter): oracle calls from a spur vertex. Labels: result (found/none).
//  3. candidates_pushed_total (counter): candidates added to the queue.
//  4. edges_excluded_total (counter): edges temporarily removed.
//  5. paths_accepted_total (counter): paths returned to callers.
//  6. yen_duration_seconds (histogram): wall time of a Yen call.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	runs             *prometheus.CounterVec
	spurSearches     *prometheus.CounterVec
	candidatesPushed prometheus.Counter
	edgesExcluded    prometheus.Counter
	pathsAccepted    prometheus.Counter
	duration         prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil). Registering twice on the same
// registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kpaths",
			Name:      "yen_runs_total",
			Help:      "Number of Yen runs by outcome",
		}, []string{"outcome"}),
		spurSearches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kpaths",
			Name:      "spur_searches_total",
			Help:      "Number of spur shortest-path searches by result",
		}, []string{"result"}),
		candidatesPushed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "kpaths",
			Name:      "candidates_pushed_total",
			Help:      "Number of candidate paths pushed to the queue",
		}),
		edgesExcluded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "kpaths",
			Name:      "edges_excluded_total",
			Help:      "Number of edges temporarily removed during spur searches",
		}),
		pathsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "kpaths",
			Name:      "paths_accepted_total",
			Help:      "Number of paths accepted into results",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kpaths",
			Name:      "yen_duration_seconds",
			Help:      "Wall time of Yen runs in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
		}),
	}
}

func (m *Metrics) observeRun(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) spurSearch(found bool) {
	if m == nil {
		return
	}
	result := "none"
	if found {
		result = "found"
	}
	m.spurSearches.WithLabelValues(result).Inc()
}

func (m *Metrics) candidatePushed() {
	if m == nil {
		return
	}
	m.candidatesPushed.Inc()
}

func (m *Metrics) excluded(n int) {
	if m == nil {
		return
	}
	m.edgesExcluded.Add(float64(n))
}

func (m *Metrics) pathAccepted() {
	if m == nil {
		return
	}
	m.pathsAccepted.Inc()
}
