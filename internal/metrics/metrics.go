package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess     = "success"
	StatusUnsupported = "unsupported"
	StatusFailed      = "failed"
	StatusEmpty       = "empty"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var extractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "resume_extractions_total",
	Help: "Resume text extractions labelled by file type and outcome",
}, []string{"file_type", "status"})

var analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "resume_analyses_total",
	Help: "Resume analyses labelled by outcome",
}, []string{"status"})

var extractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "resume_extraction_duration_seconds",
	Help:    "Time spent extracting text from an uploaded resume.",
	Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2},
}, []string{"file_type"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.1, .25, .5, 1, 2, 5, 10, 30, 60},
}, []string{"service"})

func CaptureExtraction(fileType, status string, timeElapsed time.Duration) {
	extractionsTotal.WithLabelValues(fileType, status).Inc()
	if status != StatusUnsupported {
		extractionDuration.WithLabelValues(fileType).Observe(timeElapsed.Seconds())
	}
}

func CaptureAnalysis(status string) {
	analysesTotal.WithLabelValues(status).Inc()
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
