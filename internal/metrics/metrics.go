package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScanOutcomes counts scan results by status (success, spoof, unknown, error).
	ScanOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "facetrack",
		Name:      "scan_outcomes_total",
		Help:      "Face scans by outcome.",
	}, []string{"status"})

	CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "facetrack",
		Name:      "check_ins_total",
		Help:      "Recorded attendance logs by method and status.",
	}, []string{"method", "status"})

	RecognitionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "facetrack",
		Name:      "recognition_duration_seconds",
		Help:      "Latency of the external recognition call.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
	})

	RecognitionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "facetrack",
		Name:      "recognition_failures_total",
		Help:      "Recognition calls that degraded to the safe default.",
	}, []string{"stage"})
)
