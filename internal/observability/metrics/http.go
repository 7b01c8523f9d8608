package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	answersTotal        *prometheus.CounterVec
	answerDuration      *prometheus.HistogramVec
	gateRejectionsTotal *prometheus.CounterVec
	retrievalFallbacks  *prometheus.CounterVec
	generationFailures  *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "portfolio",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	answersTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "qa",
			Name:      "answers_total",
			Help:      "Total answers served by routed section and source.",
		},
		[]string{"service", "section", "source"},
	)
	answerDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "qa",
			Name:      "answer_duration_seconds",
			Help:      "End-to-end answer duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "source"},
	)
	gateRejectionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "qa",
			Name:      "gate_rejections_total",
			Help:      "Generated answers rejected by the grounding gate, by reason.",
		},
		[]string{"service", "reason"},
	)
	retrievalFallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "qa",
			Name:      "retrieval_fallbacks_total",
			Help:      "Requests served with the default profile chunk because retrieval failed or matched nothing.",
		},
		[]string{"service"},
	)
	generationFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "qa",
			Name:      "generation_failures_total",
			Help:      "Generative calls that returned an error.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		answersTotal,
		answerDuration,
		gateRejectionsTotal,
		retrievalFallbacks,
		generationFailures,
	)

	return &HTTPServerMetrics{
		registry:            registry,
		requestTotal:        requestTotal,
		requestDuration:     requestDuration,
		requestInFlight:     requestInFlight,
		answersTotal:        answersTotal,
		answerDuration:      answerDuration,
		gateRejectionsTotal: gateRejectionsTotal,
		retrievalFallbacks:  retrievalFallbacks,
		generationFailures:  generationFailures,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPServerMetrics) RecordAnswer(service, section, source string, duration time.Duration) {
	if section == "" {
		section = "unclassified"
	}
	if source == "" {
		source = "unknown"
	}
	m.answersTotal.WithLabelValues(service, section, source).Inc()
	m.answerDuration.WithLabelValues(service, source).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RecordGateRejection(service, reason string) {
	if reason == "" {
		reason = "unknown"
	}
	m.gateRejectionsTotal.WithLabelValues(service, reason).Inc()
}

func (m *HTTPServerMetrics) RecordRetrievalFallback(service string) {
	m.retrievalFallbacks.WithLabelValues(service).Inc()
}

func (m *HTTPServerMetrics) RecordGenerationFailure(service string) {
	m.generationFailures.WithLabelValues(service).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}
