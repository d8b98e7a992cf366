package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Snapshot metrics
	SnapshotTableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "snapshot_table_rows",
			Help: "Row count per loaded snapshot table",
		},
		[]string{"table"},
	)

	SnapshotLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snapshot_load_duration_seconds",
			Help:    "Duration of one-time snapshot table loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)

	SnapshotLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_load_errors_total",
			Help: "Total number of snapshot table load failures",
		},
		[]string{"table"},
	)

	// Similarity matrix metrics
	SimilarityBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_matrix_build_duration_seconds",
			Help:    "Duration of the one-time similarity matrix build in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	SimilarityCorpusSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_corpus_size",
			Help: "Number of titles in the similarity corpus",
		},
	)
)

// RecordAPIRequest records latency for one served request
func RecordAPIRequest(method, path string, status int, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordTableLoad records a completed snapshot table load
func RecordTableLoad(table string, rows int, duration time.Duration) {
	SnapshotTableRows.WithLabelValues(table).Set(float64(rows))
	SnapshotLoadDuration.WithLabelValues(table).Observe(duration.Seconds())
}
