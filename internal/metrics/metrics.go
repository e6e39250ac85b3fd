// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Frame Metrics
	FramesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockcam_frames_generated_total",
			Help: "Total number of frames generated",
		},
	)

	FrameErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mockcam_frame_errors_total",
			Help: "Total number of frames that failed to encode",
		},
	)

	FrameGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mockcam_frame_generation_duration_seconds",
			Help:    "Time spent drawing and encoding one frame",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	FrameSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mockcam_frame_size_bytes",
			Help:    "Size of encoded JPEG frames in bytes",
			Buckets: prometheus.ExponentialBuckets(8*1024, 2, 6), // 8KiB .. 256KiB
		},
	)

	FrameCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mockcam_frame_count",
			Help: "Current value of the camera frame counter",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordFrame records one successful frame generation.
func RecordFrame(duration time.Duration, sizeBytes int, frameCount uint64) {
	FramesGenerated.Inc()
	FrameGenerationDuration.Observe(duration.Seconds())
	FrameSizeBytes.Observe(float64(sizeBytes))
	FrameCount.Set(float64(frameCount))
}

// RecordFrameError records a frame that could not be encoded.
func RecordFrameError(frameCount uint64) {
	FrameErrors.Inc()
	FrameCount.Set(float64(frameCount))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected with 429.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build information gauge.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// UpdateUptime sets app_uptime_seconds from the process start time.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
