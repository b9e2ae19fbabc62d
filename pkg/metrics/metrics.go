// Package metrics provides Prometheus instrumentation for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "genie"

var (
	// jobsTotal is a counter of processed jobs.
	jobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Total number of processed jobs",
		},
		[]string{"type", "status"}, // status: completed, failed
	)

	// jobDuration is a histogram of job execution duration in seconds.
	jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Histogram of job execution duration in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"type"},
	)

	// jobsActive is a gauge of jobs currently executing.
	jobsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "jobs_active",
			Help:      "Number of jobs currently executing",
		},
	)

	// wsConnections is a gauge of open WebSocket connections.
	wsConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_connections",
			Help:      "Number of open WebSocket connections",
		},
	)

	// eventsPublished is a counter of events published to the bus.
	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of events published to the event bus",
		},
		[]string{"topic", "type"},
	)

	// llmRequests is a counter of LLM completion calls.
	llmRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "Total number of LLM completion requests",
		},
		[]string{"mode", "status"}, // mode: complete, stream; status: success, error
	)

	// analyticsQueries is a counter of analytics query executions.
	analyticsQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_queries_total",
			Help:      "Total number of analytics query executions",
		},
		[]string{"status"}, // status: success, error, timeout
	)

	// httpRequestDuration is a histogram of HTTP request duration.
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// allMetrics is a list of all metrics for registration.
	allMetrics = []prometheus.Collector{
		jobsTotal,
		jobDuration,
		jobsActive,
		wsConnections,
		eventsPublished,
		llmRequests,
		analyticsQueries,
		httpRequestDuration,
	}
)

// RecordJobStart records a job entering execution.
func RecordJobStart() {
	jobsActive.Inc()
}

// RecordJobEnd records a finished job.
func RecordJobEnd(jobType, status string, durationSeconds float64) {
	jobsActive.Dec()
	jobsTotal.WithLabelValues(jobType, status).Inc()
	jobDuration.WithLabelValues(jobType).Observe(durationSeconds)
}

// RecordWSConnect records a WebSocket connection being opened.
func RecordWSConnect() {
	wsConnections.Inc()
}

// RecordWSDisconnect records a WebSocket connection being closed.
func RecordWSDisconnect() {
	wsConnections.Dec()
}

// RecordEventPublished records an event published to the bus.
func RecordEventPublished(topic, eventType string) {
	eventsPublished.WithLabelValues(topic, eventType).Inc()
}

// RecordLLMRequest records an LLM completion call.
func RecordLLMRequest(mode, status string) {
	llmRequests.WithLabelValues(mode, status).Inc()
}

// RecordAnalyticsQuery records an analytics query execution.
func RecordAnalyticsQuery(status string) {
	analyticsQueries.WithLabelValues(status).Inc()
}

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(method, path, status string, durationSeconds float64) {
	httpRequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
}
