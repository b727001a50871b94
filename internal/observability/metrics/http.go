package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	ragRequestsTotal     *prometheus.CounterVec
	ragRetrievalHitTotal *prometheus.CounterVec
	ragNoContextTotal    *prometheus.CounterVec
	ragRetrievedSources  *prometheus.HistogramVec
	ragDuration          *prometheus.HistogramVec

	answerGradesTotal     *prometheus.CounterVec
	answerRiskScore       *prometheus.HistogramVec
	invalidCitationsTotal *prometheus.CounterVec

	remoteFallbacksTotal *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halalai",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "halalai",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "halalai",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	ragRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halalai",
			Subsystem: "rag",
			Name:      "requests_total",
			Help:      "Total successful retrieval-augmented requests.",
		},
		[]string{"service", "endpoint"},
	)
	ragRetrievalHitTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halalai",
			Subsystem: "rag",
			Name:      "retrieval_hit_total",
			Help:      "Total requests with at least one retrieved verse.",
		},
		[]string{"service", "endpoint"},
	)
	ragNoContextTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halalai",
			Subsystem: "rag",
			Name:      "no_context_total",
			Help:      "Total requests answered without retrieved verses.",
		},
		[]string{"service", "endpoint"},
	)
	ragRetrievedSources := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "halalai",
			Subsystem: "rag",
			Name:      "retrieved_sources",
			Help:      "Distribution of retrieved verse passages per request.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
		[]string{"service", "endpoint"},
	)
	ragDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "halalai",
			Subsystem: "rag",
			Name:      "duration_seconds",
			Help:      "Retrieval plus generation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	answerGradesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halalai",
			Subsystem: "quality",
			Name:      "answer_grades_total",
			Help:      "Total graded answers by quality grade.",
		},
		[]string{"service", "grade"},
	)
	answerRiskScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "halalai",
			Subsystem: "quality",
			Name:      "answer_risk_score",
			Help:      "Distribution of answer risk scores.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10, 15, 20},
		},
		[]string{"service"},
	)
	invalidCitationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halalai",
			Subsystem: "quality",
			Name:      "invalid_citations_total",
			Help:      "Total citations that did not match any retrieved verse.",
		},
		[]string{"service"},
	)
	remoteFallbacksTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halalai",
			Subsystem: "llm",
			Name:      "remote_fallbacks_total",
			Help:      "Total remote generations that fell back to the local model.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		ragRequestsTotal,
		ragRetrievalHitTotal,
		ragNoContextTotal,
		ragRetrievedSources,
		ragDuration,
		answerGradesTotal,
		answerRiskScore,
		invalidCitationsTotal,
		remoteFallbacksTotal,
	)

	return &HTTPServerMetrics{
		registry:              registry,
		requestTotal:          requestTotal,
		requestDuration:       requestDuration,
		requestInFlight:       requestInFlight,
		ragRequestsTotal:      ragRequestsTotal,
		ragRetrievalHitTotal:  ragRetrievalHitTotal,
		ragNoContextTotal:     ragNoContextTotal,
		ragRetrievedSources:   ragRetrievedSources,
		ragDuration:           ragDuration,
		answerGradesTotal:     answerGradesTotal,
		answerRiskScore:       answerRiskScore,
		invalidCitationsTotal: invalidCitationsTotal,
		remoteFallbacksTotal:  remoteFallbacksTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
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
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/corpus/"):
		return "/v1/corpus/{source_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordRAGObservation(service, endpoint string, sourceCount int, duration time.Duration) {
	m.ragRequestsTotal.WithLabelValues(service, endpoint).Inc()
	m.ragRetrievedSources.WithLabelValues(service, endpoint).Observe(float64(sourceCount))
	m.ragDuration.WithLabelValues(service, endpoint).Observe(duration.Seconds())

	if sourceCount > 0 {
		m.ragRetrievalHitTotal.WithLabelValues(service, endpoint).Inc()
		return
	}
	m.ragNoContextTotal.WithLabelValues(service, endpoint).Inc()
}

func (m *HTTPServerMetrics) RecordAnswerQuality(service, grade string, riskScore, invalidCitations int) {
	if grade == "" {
		grade = "unknown"
	}
	m.answerGradesTotal.WithLabelValues(service, grade).Inc()
	m.answerRiskScore.WithLabelValues(service).Observe(float64(riskScore))
	if invalidCitations > 0 {
		m.invalidCitationsTotal.WithLabelValues(service).Add(float64(invalidCitations))
	}
}

func (m *HTTPServerMetrics) RecordRemoteFallback(service string) {
	m.remoteFallbacksTotal.WithLabelValues(service).Inc()
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

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
