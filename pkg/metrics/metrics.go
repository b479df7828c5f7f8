// Package metrics defines the Prometheus instruments j2py exposes, grounded
// on the teacher's RED-metrics struct-of-instruments style
// (pkg/observability/metrics.go) but built directly on
// prometheus/client_golang rather than the OTel metrics API, since that is
// the metrics dependency actually wired through `j2py serve`.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	resultOK    = "ok"
	resultError = "error"
)

// durationBucketBoundaries covers single-file translations: microseconds
// for a trivial class, low seconds for a large, deeply nested one.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10}

// Metrics holds every instrument j2py records against. A single instance
// is created per process and shared across translate invocations.
type Metrics struct {
	ParseTotal          *prometheus.CounterVec
	TranslateDuration   prometheus.Histogram
	TranslateNodesTotal prometheus.Counter
}

// New registers j2py's instruments against reg and returns the handle used
// to record them. Passing a fresh registry (as tests do) avoids collisions
// with prometheus.DefaultRegisterer across test runs.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ParseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "j2py_parse_total",
			Help: "Total number of lex+parse attempts, partitioned by result.",
		}, []string{"result"}),
		TranslateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "j2py_translate_duration_seconds",
			Help:    "Time spent translating a parsed compilation unit to Python.",
			Buckets: durationBucketBoundaries,
		}),
		TranslateNodesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "j2py_translate_nodes_total",
			Help: "Total number of AST nodes emitted across all translations.",
		}),
	}

	reg.MustRegister(m.ParseTotal, m.TranslateDuration, m.TranslateNodesTotal)

	return m
}

// RecordParseOK increments the parse counter for a successful lex+parse.
func (m *Metrics) RecordParseOK() {
	m.ParseTotal.WithLabelValues(resultOK).Inc()
}

// RecordParseError increments the parse counter for a failed lex+parse.
func (m *Metrics) RecordParseError() {
	m.ParseTotal.WithLabelValues(resultError).Inc()
}

// RecordTranslate records one translation's wall-clock duration and the
// number of AST nodes it walked.
func (m *Metrics) RecordTranslate(seconds float64, nodeCount int) {
	m.TranslateDuration.Observe(seconds)
	m.TranslateNodesTotal.Add(float64(nodeCount))
}
