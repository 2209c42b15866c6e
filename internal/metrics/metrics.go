// Package metrics records per-run build metrics in a private Prometheus
// registry and writes them in the node exporter textfile format.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"wordbag/internal/normalize"
)

const namespace = "wordbag"

// Token stages reported under wordbag_tokens_total.
const (
	StageTokenized = "tokenized"
	StageNonAlpha  = "non_alpha"
	StageStopword  = "stopword"
	StageKept      = "kept"
)

// Run holds the metrics of one build.
type Run struct {
	registry *prometheus.Registry

	documents     prometheus.Counter
	tokens        *prometheus.CounterVec
	vocabulary    prometheus.Gauge
	rows          prometheus.Gauge
	normalizeTime prometheus.Histogram
	lastSuccess   prometheus.Gauge
	duplicateRows prometheus.Counter
}

// NewRun creates the metric set on a fresh registry.
func NewRun() *Run {
	r := &Run{
		registry: prometheus.NewRegistry(),
		documents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_processed_total",
			Help:      "Documents normalized and merged into the matrix",
		}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Tokens seen per normalization stage",
		}, []string{"stage"}),
		vocabulary: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vocabulary_size",
			Help:      "Distinct tokens in the matrix",
		}),
		rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matrix_rows",
			Help:      "Periods in the matrix",
		}),
		normalizeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "normalize_duration_seconds",
			Help:      "Time spent normalizing one document",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful build",
		}),
		duplicateRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_periods_total",
			Help:      "Documents whose period was already present",
		}),
	}
	r.registry.MustRegister(
		r.documents,
		r.tokens,
		r.vocabulary,
		r.rows,
		r.normalizeTime,
		r.lastSuccess,
		r.duplicateRows,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Run) Registry() *prometheus.Registry { return r.registry }

// ObserveDocument records one normalized document.
func (r *Run) ObserveDocument(stats normalize.Stats, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.documents.Inc()
	r.tokens.WithLabelValues(StageTokenized).Add(float64(stats.Tokens))
	r.tokens.WithLabelValues(StageNonAlpha).Add(float64(stats.DroppedNonAlpha))
	r.tokens.WithLabelValues(StageStopword).Add(float64(stats.DroppedStopwords))
	r.tokens.WithLabelValues(StageKept).Add(float64(stats.Kept))
	r.normalizeTime.Observe(elapsed.Seconds())
}

// ObserveDuplicate counts a document merged into an existing period.
func (r *Run) ObserveDuplicate() {
	if r == nil {
		return
	}
	r.duplicateRows.Inc()
}

// SetShape records the finished matrix dimensions.
func (r *Run) SetShape(rows, vocabulary int) {
	if r == nil {
		return
	}
	r.rows.Set(float64(rows))
	r.vocabulary.Set(float64(vocabulary))
}

// MarkSuccess stamps the completion time.
func (r *Run) MarkSuccess(at time.Time) {
	if r == nil {
		return
	}
	r.lastSuccess.Set(float64(at.Unix()))
}

// WriteTextfile writes the registry to path for the node exporter textfile
// collector. The write is atomic.
func (r *Run) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create metrics directory: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
