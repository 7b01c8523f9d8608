package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IndexerMetrics instruments the standalone indexer process: full
// corpus rebuilds, whether triggered at boot or by a reindex message.
type IndexerMetrics struct {
	registry *prometheus.Registry

	rebuildTotal    *prometheus.CounterVec
	rebuildDuration *prometheus.HistogramVec
	rebuildInFlight prometheus.Gauge
	indexedChunks   *prometheus.GaugeVec
}

func NewIndexerMetrics(service string) *IndexerMetrics {
	registry := prometheus.NewRegistry()

	rebuildTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "indexer",
			Name:      "rebuild_total",
			Help:      "Total index rebuilds by status.",
		},
		[]string{"service", "status"},
	)
	rebuildDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "indexer",
			Name:      "rebuild_duration_seconds",
			Help:      "Index rebuild duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	rebuildInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "portfolio",
			Subsystem: "indexer",
			Name:      "rebuild_in_flight",
			Help:      "Whether an index rebuild is currently running.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	indexedChunks := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "portfolio",
			Subsystem: "indexer",
			Name:      "indexed_chunks",
			Help:      "Chunk count written by the most recent successful rebuild.",
		},
		[]string{"service"},
	)

	registry.MustRegister(rebuildTotal, rebuildDuration, rebuildInFlight, indexedChunks)

	return &IndexerMetrics{
		registry:        registry,
		rebuildTotal:    rebuildTotal,
		rebuildDuration: rebuildDuration,
		rebuildInFlight: rebuildInFlight,
		indexedChunks:   indexedChunks,
	}
}

func (m *IndexerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *IndexerMetrics) StartRebuild() {
	m.rebuildInFlight.Inc()
}

func (m *IndexerMetrics) FinishRebuild(service string, chunks int, duration time.Duration, err error) {
	m.rebuildInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.rebuildTotal.WithLabelValues(service, status).Inc()
	m.rebuildDuration.WithLabelValues(service, status).Observe(duration.Seconds())
	if err == nil {
		m.indexedChunks.WithLabelValues(service).Set(float64(chunks))
	}
}
